package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"foodist/recipe"
	"foodist/tools/storage"
)

type RecipeAddIngredient struct{ state storage.RecipeState }

func NewRecipeAddIngredient(state storage.RecipeState) *RecipeAddIngredient {
	return &RecipeAddIngredient{state: state}
}

func (t *RecipeAddIngredient) Name() string  { return "recipe_add_ingredient" }
func (t *RecipeAddIngredient) Title() string { return "Add Ingredient To Recipe" }
func (t *RecipeAddIngredient) Description() string {
	return "Parses a free-text ingredient line and appends it to a stored recipe. When the line has a quantity on both sides of the name the leading one is kept and the other is reported as discarded."
}

func (t *RecipeAddIngredient) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":   {Type: "string"},
			"text": {Type: "string"},
		},
		Required: []string{"id", "text"},
	}
}

func (t *RecipeAddIngredient) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "string"},
			"ingredient": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name":      {Type: "string"},
					"quantity":  {Type: "string"},
					"discarded": {Type: "string"},
				},
				Required: []string{"name", "quantity"},
			},
			"ingredient_count": {Type: "integer"},
		},
		Required: []string{"id", "ingredient", "ingredient_count"},
	}
}

func (t *RecipeAddIngredient) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := stringInput(input, "id")
	if err != nil {
		return nil, err
	}
	text, _ := input["text"].(string)

	recipes, err := LoadRecipes(ctx, t.state)
	if err != nil {
		return nil, err
	}
	r, err := recipe.Find(recipes, id)
	if err != nil {
		return nil, err
	}

	ing, err := r.AddIngredient(text)
	if err != nil {
		return nil, err
	}
	if err := SaveRecipes(ctx, t.state, recipes); err != nil {
		return nil, err
	}

	return toMap(struct {
		ID         string         `json:"id"`
		Ingredient ingredientLine `json:"ingredient"`
		Count      int            `json:"ingredient_count"`
	}{r.ID, ingredientLine{Name: ing.Name, Quantity: ing.Qty.String(), Discarded: ing.Discarded}, len(r.Ingredients)})
}
