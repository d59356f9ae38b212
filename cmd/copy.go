package main

import (
	"context"
	"fmt"
	"genericurl/internal/copier"
	"genericurl/pkg/clipboard"
	"genericurl/pkg/urlsource"
	"io"

	"github.com/spf13/cobra"
)

// lineWriter is a ClipboardWriter that prints instead of copying.
type lineWriter struct {
	w io.Writer
}

func (l lineWriter) WriteText(_ context.Context, text string) error {
	if _, err := fmt.Fprintln(l.w, text); err != nil {
		return fmt.Errorf("could not print URL: %w", err)
	}

	return nil
}

// copyCommand constructs the 'copy' subcommand: the command-line version of
// the popup button. The URL comes from the argument, stdin or the clipboard
// itself, and its generic form is written to the clipboard.
func copyCommand(a *app) *cobra.Command {
	var fromStdin, printOnly bool

	cmd := &cobra.Command{
		Use:   "copy [URL]",
		Short: "Copies the generic form of a URL to the clipboard",
		Long: "Copies the generic form of a URL to the clipboard.\n\n" +
			"The URL is taken from the argument, from the first line of stdin with --stdin,\n" +
			"or from the clipboard itself otherwise.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider copier.URLProvider
			system := clipboard.New()
			switch {
			case len(args) == 1:
				provider = urlsource.Static(args[0])
			case fromStdin:
				provider = urlsource.NewReader(cmd.InOrStdin())
			default:
				provider = system
			}

			printOnly = printOnly || a.cfg.Copy.PrintOnly
			var writer copier.ClipboardWriter = system
			if printOnly {
				writer = lineWriter{w: cmd.OutOrStdout()}
			}

			res := copier.New(copier.Deps{
				Provider:   provider,
				Writer:     writer,
				Normalizer: a.normalizer,
			}).Copy(cmd.Context())

			switch {
			case !res.OK():
				a.printer.CopyResult(res)

				return errReported
			case !printOnly:
				a.printer.CopyResult(res)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the URL from the first non-blank line of stdin")
	cmd.Flags().BoolVarP(&printOnly, "print-only", "p", false, "Print the URL instead of copying it")

	return cmd
}
