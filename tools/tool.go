package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	OutputSchema() *jsonschema.Schema
	Run(ctx context.Context, input map[string]any) (output map[string]any, err error)
}

type Call struct {
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// toMap marshals v and decodes it back into a map to keep outputs uniform.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return m, nil
}

func stringInput(input map[string]any, key string) (string, error) {
	s, ok := input[key].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("missing %q", key)
	}
	return s, nil
}

// numberInput accepts JSON numbers and Go numeric values.
func numberInput(input map[string]any, key string) (float64, bool) {
	switch v := input[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
