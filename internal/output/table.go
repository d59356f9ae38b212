package output

import (
	"genericurl/pkg/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var explainHeader = []string{"input", "url", "rule", "item id"} //nolint: gochecknoglobals

// Explain renders one row per canonical result.
func (p *Printer) Explain(items []domain.Canonical) error {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(items))
	for _, c := range items {
		itemID := c.ItemID
		if itemID == "" {
			itemID = "-"
		}
		rows = append(rows, []string{c.Input, c.URL, string(c.Rule), itemID})
	}

	table.Header(explainHeader)
	if err := table.Bulk(rows); err != nil {
		return err
	}

	return table.Render()
}
