package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"foodist"
	"foodist/ingredient"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>...",
		Short: "Parse ingredient lines and print the normalized form",
		Example: `  foodist parse "2 1/2 cups flour" "eggs 3" "350g \"00\" flour"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, line := range args {
				ing, err := ingredient.Parse(line)
				a.logParse(foodist.NewParseLog(line, ing, err))
				if err != nil {
					failed++
					slog.Debug("PARSE: Failed", "input", line, "error", err)
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", line, ingredient.Message(err))
					continue
				}
				if ing.Discarded != "" {
					slog.Warn("PARSE: Quantity on both sides of the name, keeping the leading one",
						"input", line, "discarded", ing.Discarded)
				}
				if a.debug {
					foodist.Dump(cmd.ErrOrStderr(), ing)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ing.String())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lines could not be parsed", failed, len(args))
			}
			return nil
		},
	}
}
