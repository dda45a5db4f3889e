package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"foodist"
	"foodist/ingredient"
	"foodist/recipe"
	"foodist/share"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		serves int
		lines  []string
	)
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a recipe",
		Example: `  foodist new "Pancakes" --serves 4 -i "200g plain flour" -i "2 eggs"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serves < 1 {
				return fmt.Errorf("--serves must be at least 1")
			}
			ctx := cmd.Context()

			recipes, err := a.loadRecipes(ctx)
			if err != nil {
				return err
			}

			r := recipe.New(args[0], serves)
			if r.Name == "" {
				return fmt.Errorf("recipe name is required")
			}
			for _, line := range lines {
				ing, err := r.AddIngredient(line)
				a.logParse(foodist.NewParseLog(line, ing, err))
				if err != nil {
					return fmt.Errorf("%s: %s", line, ingredient.Message(err))
				}
				if ing.Discarded != "" {
					slog.Warn("PARSE: Quantity on both sides of the name, keeping the leading one",
						"input", line, "discarded", ing.Discarded)
				}
			}

			recipes = append(recipes, *r)
			if err := a.saveRecipes(ctx, recipes); err != nil {
				return err
			}
			if a.debug {
				foodist.Dump(cmd.ErrOrStderr(), r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&serves, "serves", 1, "Number of people the recipe serves")
	cmd.Flags().StringArrayVarP(&lines, "ingredient", "i", nil, "Ingredient line (repeatable)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := a.loadRecipes(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (serves %d, %d ingredients)\n",
					r.ID, r.Name, r.Serves, len(r.Ingredients))
			}
			return nil
		},
	}
}

func newScaleCmd(a *app) *cobra.Command {
	var makeFor int
	cmd := &cobra.Command{
		Use:   "scale <recipe-id>",
		Short: "Print a recipe's ingredients sized for a number of people",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{"id": args[0]}
			if cmd.Flags().Changed("make-for") {
				input["make_for"] = makeFor
			}

			out, err := a.runner.Run(cmd.Context(), "recipe_scale", input)
			if err != nil {
				return err
			}
			if a.debug {
				foodist.Dump(cmd.ErrOrStderr(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v (for %v)\n", out["name"], out["make_for"])
			ings, _ := out["ingredients"].([]any)
			for _, item := range ings {
				line, _ := item.(map[string]any)
				fmt.Fprintf(w, "  %v %v\n", line["quantity"], line["name"])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&makeFor, "make-for", 0, "Number of people to make the recipe for (defaults to its serving count)")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <recipe-id> <line>",
		Short: "Parse an ingredient line and add it to a recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := args[1]
			out, err := a.runner.Run(cmd.Context(), "recipe_add_ingredient", map[string]any{
				"id":   args[0],
				"text": line,
			})
			if err != nil {
				if parseFailure(err) {
					a.logParse(foodist.NewParseLog(line, ingredient.Ingredient{}, err))
					return fmt.Errorf("%s: %s", line, ingredient.Message(err))
				}
				return err
			}

			added, _ := out["ingredient"].(map[string]any)
			name, _ := added["name"].(string)
			qty, _ := added["quantity"].(string)
			discarded, _ := added["discarded"].(string)
			if discarded != "" {
				slog.Warn("PARSE: Quantity on both sides of the name, keeping the leading one",
					"input", line, "discarded", discarded)
			}
			a.logParse(foodist.ParseLog{Timestamp: time.Now(), Input: line, Name: name, Quantity: qty, Discarded: discarded})

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", qty, name)
			return nil
		},
	}
}

func newShareCmd(a *app) *cobra.Command {
	var (
		makeFor int
		channel string
	)
	cmd := &cobra.Command{
		Use:   "share <recipe-id>",
		Short: "Post a recipe's shopping list to the configured webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			recipes, err := a.loadRecipes(ctx)
			if err != nil {
				return err
			}
			r, err := recipe.Find(recipes, args[0])
			if err != nil {
				return err
			}
			if channel == "" {
				channel = a.share.Channel
			}

			var httpClient foodist.HTTPClient = &http.Client{Timeout: 10 * time.Second}
			var client foodist.ShareClient = share.NewClient(a.share.WebhookURL, httpClient)
			if err := client.ShareRecipe(ctx, channel, r, makeFor); err != nil {
				return fmt.Errorf("share recipe: %w", err)
			}
			slog.Info("SHARE: Recipe shared", "id", r.ID, "channel", channel)
			fmt.Fprintf(cmd.OutOrStdout(), "shared %s to %s\n", strings.TrimSpace(r.Name), channel)
			return nil
		},
	}
	cmd.Flags().IntVar(&makeFor, "make-for", 0, "Number of people to size the list for (defaults to its serving count)")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel to post to (defaults to FOODIST_SHARE_CHANNEL)")
	return cmd
}
