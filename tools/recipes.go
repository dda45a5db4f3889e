package tools

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"foodist/recipe"
	"foodist/tools/storage"
)

// LoadRecipes reads and decodes the collection. A store that does not exist
// yet is an empty collection.
func LoadRecipes(ctx context.Context, state storage.RecipeState) ([]recipe.Recipe, error) {
	b, err := state.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return make([]recipe.Recipe, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	return recipe.Decode(b)
}

// SaveRecipes encodes and writes the collection.
func SaveRecipes(ctx context.Context, state storage.RecipeState, recipes []recipe.Recipe) error {
	b, err := recipe.Encode(recipes)
	if err != nil {
		return err
	}
	if err := state.Save(ctx, b); err != nil {
		return fmt.Errorf("write recipes: %w", err)
	}
	return nil
}

type ingredientLine struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Discarded string `json:"discarded,omitempty"`
}
