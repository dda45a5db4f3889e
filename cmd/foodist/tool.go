package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"foodist/ingredient"
)

func newToolCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tool [name] [json-input]",
		Short: "List the available tools or run one with a JSON input",
		Example: `  foodist tool
  foodist tool quantity_scale '{"quantity":"1/2 cup","factor":3}'`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, t := range a.registry.GetTools() {
					fmt.Fprintf(tw, "%s\t%s\n", t.Name(), t.Description())
				}
				return tw.Flush()
			}

			input := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &input); err != nil {
					return fmt.Errorf("tool input must be a JSON object: %w", err)
				}
			}

			out, err := a.runner.Run(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(data))
			return nil
		},
	}
}

func parseFailure(err error) bool {
	return errors.Is(err, ingredient.ErrNoValidMatch) ||
		errors.Is(err, ingredient.ErrNoIngredientName) ||
		errors.Is(err, ingredient.ErrInvalidUnit) ||
		errors.Is(err, ingredient.ErrInvalidFormat)
}
