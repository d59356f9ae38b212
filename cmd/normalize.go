package main

import (
	"bufio"
	"fmt"
	"genericurl/pkg/domain"
	"strings"

	"github.com/spf13/cobra"
)

// normalizeCommand constructs the 'normalize' subcommand that prints the
// generic form of each argument, or of each non-blank stdin line.
func normalizeCommand(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "normalize [URL...]",
		Short: "Prints the generic form of URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if strings.TrimSpace(sc.Text()) != "" {
						inputs = append(inputs, sc.Text())
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("could not read stdin: %w", err)
				}
				if len(inputs) == 0 {
					a.printer.Warn("no URLs to normalize")

					return nil
				}
			}

			items := make([]domain.Canonical, 0, len(inputs))
			for _, raw := range inputs {
				items = append(items, a.normalizer.Canonicalize(raw))
			}

			if explain {
				if err := a.printer.Explain(items); err != nil {
					return fmt.Errorf("could not render table: %w", err)
				}

				return nil
			}
			for _, c := range items {
				a.printer.URL(c.URL)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show the rule and item id behind each URL")

	return cmd
}
