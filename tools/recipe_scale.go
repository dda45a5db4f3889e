package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"foodist/recipe"
	"foodist/tools/storage"
)

type RecipeScale struct{ state storage.RecipeState }

func NewRecipeScale(state storage.RecipeState) *RecipeScale { return &RecipeScale{state: state} }

func (t *RecipeScale) Name() string  { return "recipe_scale" }
func (t *RecipeScale) Title() string { return "Scale Recipe" }
func (t *RecipeScale) Description() string {
	return "Returns a recipe's ingredients sized for make_for people. The stored recipe is not changed."
}

func (t *RecipeScale) InputSchema() *jsonschema.Schema {
	minMakeFor := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":       {Type: "string"},
			"make_for": {Type: "integer", Minimum: &minMakeFor},
		},
		Required: []string{"id"},
	}
}

func (t *RecipeScale) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":       {Type: "string"},
			"name":     {Type: "string"},
			"serves":   {Type: "integer"},
			"make_for": {Type: "integer"},
			"ingredients": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"name":     {Type: "string"},
						"quantity": {Type: "string"},
					},
					Required: []string{"name", "quantity"},
				},
			},
		},
		Required: []string{"id", "name", "serves", "make_for", "ingredients"},
	}
}

func (t *RecipeScale) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := stringInput(input, "id")
	if err != nil {
		return nil, err
	}

	recipes, err := LoadRecipes(ctx, t.state)
	if err != nil {
		return nil, err
	}
	r, err := recipe.Find(recipes, id)
	if err != nil {
		return nil, err
	}

	makeFor := r.Serves
	if v, ok := numberInput(input, "make_for"); ok {
		if v < 1 || v != float64(int(v)) {
			return nil, fmt.Errorf("make_for must be a positive whole number, got %v", v)
		}
		makeFor = int(v)
	}

	scaled := r.Scaled(makeFor)
	lines := make([]ingredientLine, len(scaled))
	for i, ing := range scaled {
		lines[i] = ingredientLine{Name: ing.Name, Quantity: ing.Qty.String()}
	}

	return toMap(struct {
		ID          string           `json:"id"`
		Name        string           `json:"name"`
		Serves      int              `json:"serves"`
		MakeFor     int              `json:"make_for"`
		Ingredients []ingredientLine `json:"ingredients"`
	}{r.ID, r.Name, r.Serves, makeFor, lines})
}
