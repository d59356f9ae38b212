// Package output renders command results for the terminal.
package output

import (
	"fmt"
	"genericurl/pkg/domain"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes user facing output. Results go to out, failures to err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer over the given writers.
func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// NewStdPrinter creates a printer over stdout and stderr. Colors follow the
// terminal detection of fatih/color, which also honors NO_COLOR.
func NewStdPrinter() *Printer {
	return NewPrinter(os.Stdout, os.Stderr, !color.NoColor)
}

// CopyResult prints the status line of a copy command followed by the copied
// URL or the failure message.
func (p *Printer) CopyResult(res domain.CopyResult) {
	if res.OK() {
		p.line(p.out, color.FgGreen, "✅ Copied")
		fmt.Fprintln(p.out, res.URL)

		return
	}

	p.line(p.err, color.FgRed, "❌ Copy failed")
	fmt.Fprintln(p.err, res.Message)
}

// URL prints a bare URL, suitable for piping.
func (p *Printer) URL(url string) {
	fmt.Fprintln(p.out, url)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.err, color.FgYellow, "⚠ "+fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, color.FgRed, "✗ "+fmt.Sprintf(format, args...))
}

func (p *Printer) line(w io.Writer, attr color.Attribute, text string) {
	if p.useColors {
		color.New(attr, color.Bold).Fprintln(w, text)

		return
	}
	fmt.Fprintln(w, text)
}
