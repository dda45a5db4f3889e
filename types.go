package foodist

import (
	"context"
	"net/http"

	"foodist/recipe"
	"foodist/tools"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type ShareClient interface {
	ShareRecipe(ctx context.Context, channel string, r *recipe.Recipe, makeFor int) error
}

type ToolProvider interface {
	GetTools() []tools.Tool
	GetTool(name string) (tools.Tool, error)
}

// ToolRunner executes a named tool with a JSON-shaped input.
type ToolRunner interface {
	Run(ctx context.Context, name string, input map[string]any) (map[string]any, error)
}
