package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"foodist/ingredient"
)

type IngredientParse struct{}

func NewIngredientParse() *IngredientParse { return &IngredientParse{} }

func (t *IngredientParse) Name() string  { return "ingredient_parse" }
func (t *IngredientParse) Title() string { return "Parse Ingredient" }
func (t *IngredientParse) Description() string {
	return "Parses one free-text ingredient line such as \"2 1/2 cups flour\" into a name and a quantity."
}

func (t *IngredientParse) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text": {Type: "string"},
		},
		Required: []string{"text"},
	}
}

func (t *IngredientParse) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":      {Type: "string"},
			"quantity":  {Type: "string"},
			"scalar":    {Type: "number"},
			"unit":      {Type: "string"},
			"discarded": {Type: "string"},
		},
		Required: []string{"name", "quantity", "scalar", "unit"},
	}
}

func (t *IngredientParse) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	// an empty line is a parse error, not a missing input
	text, _ := input["text"].(string)

	ing, err := ingredient.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse ingredient: %w", err)
	}

	out := map[string]any{
		"name":     ing.Name,
		"quantity": ing.Qty.String(),
		"scalar":   ing.Qty.Scalar(),
		"unit":     ing.Qty.Unit(),
	}
	if ing.Discarded != "" {
		out["discarded"] = ing.Discarded
	}
	return out, nil
}
