package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"foodist/recipe"
	"foodist/tools/storage"
)

type RecipeGet struct{ state storage.RecipeState }

func NewRecipeGet(state storage.RecipeState) *RecipeGet { return &RecipeGet{state: state} }

func (t *RecipeGet) Name() string  { return "recipe_get" }
func (t *RecipeGet) Title() string { return "Get Recipes" }
func (t *RecipeGet) Description() string {
	return "Gets stored recipes, optionally filtered by id or by a name search."
}

func (t *RecipeGet) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":   {Type: "string"},
			"name": {Type: "string"},
		},
	}
}

func (t *RecipeGet) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipes": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "object"},
			},
		},
		Required: []string{"recipes"},
	}
}

func (t *RecipeGet) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	recipes, err := LoadRecipes(ctx, t.state)
	if err != nil {
		return nil, err
	}

	id, _ := input["id"].(string)
	name, _ := input["name"].(string)
	name = strings.ToLower(strings.TrimSpace(name))

	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if id != "" && r.ID != id {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		out = append(out, r)
	}

	return toMap(map[string]any{"recipes": out})
}
