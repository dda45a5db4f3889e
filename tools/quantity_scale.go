package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"foodist/quantity"
)

type QuantityScale struct{}

func NewQuantityScale() *QuantityScale { return &QuantityScale{} }

func (t *QuantityScale) Name() string  { return "quantity_scale" }
func (t *QuantityScale) Title() string { return "Scale Quantity" }
func (t *QuantityScale) Description() string {
	return "Multiplies a quantity such as \"350g\" by a factor and returns the formatted result."
}

func (t *QuantityScale) InputSchema() *jsonschema.Schema {
	minFactor := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"quantity": {Type: "string"},
			"factor":   {Type: "number", Minimum: &minFactor},
		},
		Required: []string{"quantity", "factor"},
	}
}

func (t *QuantityScale) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"quantity": {Type: "string"},
			"scalar":   {Type: "number"},
			"unit":     {Type: "string"},
		},
		Required: []string{"quantity", "scalar", "unit"},
	}
}

func (t *QuantityScale) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	raw, err := stringInput(input, "quantity")
	if err != nil {
		return nil, err
	}
	factor, ok := numberInput(input, "factor")
	if !ok {
		return nil, fmt.Errorf("missing %q", "factor")
	}
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return nil, fmt.Errorf("factor must be a positive number, got %v", factor)
	}

	q, err := quantity.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse quantity: %w", err)
	}
	scaled := quantity.Scale(q, factor)

	return map[string]any{
		"quantity": scaled.String(),
		"scalar":   scaled.Scalar(),
		"unit":     scaled.Unit(),
	}, nil
}
