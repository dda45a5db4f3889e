package tools

import (
	"context"
	"fmt"
	"sort"

	"foodist/tools/storage"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates a new tool registry over the given recipe state.
func NewRegistry(recipes storage.RecipeState) (*Registry, error) {
	if recipes == nil {
		return nil, fmt.Errorf("recipe state is required")
	}
	list := []Tool{
		NewIngredientParse(),
		NewQuantityScale(),
		NewRecipeGet(recipes),
		NewRecipeScale(recipes),
		NewRecipeAddIngredient(recipes),
	}

	registry := make(Registry, len(list))
	for _, t := range list {
		registry[t.Name()] = t
	}
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}

// Run looks up a tool and executes it.
func (r Registry) Run(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	tool, err := r.GetTool(name)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}
	return tool.Run(ctx, input)
}
