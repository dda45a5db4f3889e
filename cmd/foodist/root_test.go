package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodist/recipe"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.json")
	t.Setenv("FOODIST_RECIPES_PATH", path)
	t.Setenv("FOODIST_S3_BUCKET", "")
	t.Setenv("FOODIST_PARSE_LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("FOODIST_SHARE_WEBHOOK_URL", "")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	cmd := a.rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errors.Join(err, a.close(context.Background()))
}

func readRecipes(t *testing.T, path string) []recipe.Recipe {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	recipes, err := recipe.Decode(data)
	require.NoError(t, err)
	return recipes
}

func TestRootHelp(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "foodist")
	assert.Contains(t, out, "parse")
}

func TestParseCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "parse", "2 1/2 cups flour", "eggs 3", "350g \"00\" flour")
	require.NoError(t, err)
	assert.Equal(t, "2.5 cup Flour\n3 Eggs\n350 g 00 Flour\n", out)

	out, err = execute(t, "parse", "20foo butter", "3 eggs")
	assert.EqualError(t, err, "1 of 2 lines could not be parsed")
	assert.Equal(t, "20foo butter: Invalid measurement unit\n3 Eggs\n", out)

	_, err = execute(t, "parse")
	assert.Error(t, err)
}

func TestParseCommandWritesParseLog(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "--parse-log", "parse", "3 eggs")
	require.NoError(t, err)

	logs, err := filepath.Glob(filepath.Join(filepath.Dir(path), "logs", "*.parse.json"))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"parse_session"`)
	assert.Contains(t, string(data), `"input": "3 eggs"`)
}

func TestRecipeWorkflow(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "new", "Pancakes", "--serves", "4",
		"-i", "200g plain flour", "-i", "2 eggs", "-i", "1/2 cup sugar")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	recipes := readRecipes(t, path)
	require.Len(t, recipes, 1)
	assert.Equal(t, id, recipes[0].ID)
	assert.Equal(t, 4, recipes[0].Serves)
	require.Len(t, recipes[0].Ingredients, 3)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, id+"\tPancakes (serves 4, 3 ingredients)\n", out)

	out, err = execute(t, "add", id, "1tbsp butter")
	require.NoError(t, err)
	assert.Equal(t, "1 tbsp Butter\n", out)

	out, err = execute(t, "scale", id, "--make-for", "6")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes (for 6)\n"+
		"  300 g Plain Flour\n"+
		"  3 Eggs\n"+
		"  3/4 cup Sugar\n"+
		"  1.5 tbsp Butter\n", out)

	// scaling is display only
	recipes = readRecipes(t, path)
	assert.Equal(t, 200.0, recipes[0].Ingredients[0].Qty.Scalar())

	out, err = execute(t, "scale", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Pancakes (for 4)")
	assert.Contains(t, out, "  1/2 cup Sugar\n")

	_, err = execute(t, "add", id, "20teaspon sugar")
	assert.EqualError(t, err, `20teaspon sugar: Invalid measurement unit, did you mean "teaspoon"?`)
	assert.Len(t, readRecipes(t, path)[0].Ingredients, 4)

	_, err = execute(t, "scale", "missing")
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestAddCommandReportsDiscardedQuantity(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "new", "Toast")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	out, err = execute(t, "--parse-log", "add", id, "2 butter 100g")
	require.NoError(t, err)
	assert.Equal(t, "2 g Butter\n", out)

	logs, err := filepath.Glob(filepath.Join(filepath.Dir(path), "logs", "*.add.json"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"discarded": "100g"`)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "discarded")
}

func TestToolCommandOnEmptyStore(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "tool", "recipe_get")
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipes":[]}`, out)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewCommandRejectsBadInput(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "new", "Soup", "--serves", "0")
	assert.Error(t, err)

	_, err = execute(t, "new", "Soup", "-i", "20foo butter")
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestShareCommandRequiresWebhook(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "new", "Toast", "-i", "2 slices bread")
	require.NoError(t, err)

	_, err = execute(t, "share", strings.TrimSpace(out))
	assert.ErrorContains(t, err, "webhook url is not configured")
}

func TestToolCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "tool")
	require.NoError(t, err)
	for _, name := range []string{"ingredient_parse", "quantity_scale", "recipe_add_ingredient", "recipe_get", "recipe_scale"} {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "tool", "quantity_scale", `{"quantity":"1/2 cup","factor":3}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":"1.5 cup","scalar":1.5,"unit":"cu"}`, out)

	_, err = execute(t, "tool", "quantity_scale", `not json`)
	assert.ErrorContains(t, err, "JSON object")

	_, err = execute(t, "tool", "meal_plan")
	assert.ErrorContains(t, err, "not found")
}
