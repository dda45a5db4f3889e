// Package recipe holds the stored recipe document and its display-time
// scaling.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foodist/ingredient"
)

var ErrNotFound = errors.New("recipe not found")

// Recipe is a stored recipe. Ingredient quantities are for Serves people.
type Recipe struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Serves      int                     `json:"serves"`
	Ingredients []ingredient.Ingredient `json:"ingredients"`
	Method      string                  `json:"method,omitempty"`
}

// New creates an empty recipe with a fresh id.
func New(name string, serves int) *Recipe {
	return &Recipe{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Serves:      serves,
		Ingredients: make([]ingredient.Ingredient, 0),
	}
}

// AddIngredient parses line and appends the result.
func (r *Recipe) AddIngredient(line string) (ingredient.Ingredient, error) {
	ing, err := ingredient.Parse(line)
	if err != nil {
		return ingredient.Ingredient{}, err
	}
	r.Ingredients = append(r.Ingredients, ing)
	return ing, nil
}

// Factor is the multiplier that turns the stored quantities into quantities
// for makeFor people. Non-positive counts leave quantities unscaled.
func (r *Recipe) Factor(makeFor int) float64 {
	if r.Serves <= 0 || makeFor <= 0 {
		return 1
	}
	return float64(makeFor) / float64(r.Serves)
}

// Scaled returns a copy of the ingredients sized for makeFor people. It is
// always computed from the stored quantities and never modifies r.
func (r *Recipe) Scaled(makeFor int) []ingredient.Ingredient {
	factor := r.Factor(makeFor)
	out := make([]ingredient.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		out[i] = ingredient.Ingredient{Name: ing.Name, Qty: ing.Qty.Scale(factor)}
	}
	return out
}

// ShoppingList formats the scaled ingredients, one "<qty> <name>" per line.
func (r *Recipe) ShoppingList(makeFor int) []string {
	scaled := r.Scaled(makeFor)
	lines := make([]string, len(scaled))
	for i, ing := range scaled {
		lines[i] = ing.String()
	}
	return lines
}

// Decode reads a JSON array of recipes.
func Decode(data []byte) ([]Recipe, error) {
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}
	if recipes == nil {
		recipes = make([]Recipe, 0)
	}
	return recipes, nil
}

// Encode writes recipes as an indented JSON array.
func Encode(recipes []Recipe) ([]byte, error) {
	if recipes == nil {
		recipes = make([]Recipe, 0)
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode recipes: %w", err)
	}
	return data, nil
}

// Find returns a pointer into recipes for the recipe with the given id.
func Find(recipes []Recipe, id string) (*Recipe, error) {
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}
