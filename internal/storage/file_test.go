package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleBook(t testing.TB) *model.RecipeBook {
	t.Helper()
	book := model.NewRecipeBook()

	pancakes, err := model.NewRecipe("Pancakes", model.MainCourse)
	require.NoError(t, err)
	flour, err := model.NewIngredient("Flour", "2 cups")
	require.NoError(t, err)
	pancakes.AddIngredient(flour)
	pancakes.AddIngredient(&model.Ingredient{Name: "Milk", Quantity: "1 cup"})
	pancakes.UpdateInstructions("Whisk, rest, fry.")
	require.NoError(t, book.Add(pancakes))

	salad, err := model.NewRecipe("Salad", model.Appetizer)
	require.NoError(t, err)
	require.NoError(t, book.Add(salad))

	return book
}

type helperT interface {
	require.TestingT
	Helper()
}

func assertSameBook(t helperT, want, got *model.RecipeBook) {
	t.Helper()
	wantList, gotList := want.List(), got.List()
	require.Equal(t, len(wantList), len(gotList))
	for i := range wantList {
		assert.Equal(t, wantList[i].Name(), gotList[i].Name())
		assert.Equal(t, wantList[i].Category, gotList[i].Category)
		assert.Equal(t, wantList[i].Instructions, gotList[i].Instructions)
		if len(wantList[i].Ingredients) == 0 {
			assert.Empty(t, gotList[i].Ingredients)
		} else {
			assert.Equal(t, wantList[i].Ingredients, gotList[i].Ingredients)
		}
	}
}

func TestFileGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recipes.json")
	gateway := NewFileGateway()
	book := sampleBook(t)

	report, err := gateway.Save(ctx, path, book)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Saved)
	assert.Empty(t, report.Skipped)

	result := gateway.Load(ctx, path)
	require.NoError(t, result.Err)
	assert.Empty(t, result.Skipped)
	assertSameBook(t, book, result.Book)
}

func TestFileGatewayLoadMissingFile(t *testing.T) {
	result := NewFileGateway().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.NotNil(t, result.Book)
	assert.Equal(t, 0, result.Book.Len())
	assert.NoError(t, result.Err)
	assert.Empty(t, result.Skipped)
}

func TestFileGatewayLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Recipes": [{"RecipeName": `), 0644))

	result := NewFileGateway().Load(context.Background(), path)
	require.NotNil(t, result.Book)
	assert.Equal(t, 0, result.Book.Len())
	assert.ErrorIs(t, result.Err, ErrParse)
	assert.NotErrorIs(t, result.Err, ErrIO)
}

func TestFileGatewayLoadUnreadablePath(t *testing.T) {
	// a directory exists at the path but cannot be read as a file
	dir := t.TempDir()

	result := NewFileGateway().Load(context.Background(), dir)
	assert.Equal(t, 0, result.Book.Len())
	assert.ErrorIs(t, result.Err, ErrIO)
}

func TestFileGatewayLoadKeepsValidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	content := `{"Recipes": [{"RecipeName": "", "Category": 0}, {"RecipeName": "Tart", "Category": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result := NewFileGateway().Load(context.Background(), path)
	require.NoError(t, result.Err)
	require.Len(t, result.Skipped, 1)
	require.Equal(t, 1, result.Book.Len())
	assert.Equal(t, "Tart", result.Book.List()[0].Name())
}

func TestFileGatewayLogsWithStoragePrefix(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "recipes.json")
	content := `{"Recipes": [{"RecipeName": "", "Category": 0}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result := NewFileGateway().Load(context.Background(), path)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, buf.String(), "storage:")
	assert.Contains(t, buf.String(), "recipe was skipped while loading")
}

func TestFileGatewayRoundTripKeepsPaddedNames(t *testing.T) {
	book := model.NewRecipeBook()
	plain, err := model.NewRecipe("Pancakes", model.MainCourse)
	require.NoError(t, err)
	padded, err := model.NewRecipe(" Pancakes ", model.Dessert)
	require.NoError(t, err)
	require.NoError(t, book.Add(plain))
	require.NoError(t, book.Add(padded))

	path := filepath.Join(t.TempDir(), "recipes.json")
	gateway := NewFileGateway()
	_, err = gateway.Save(context.Background(), path, book)
	require.NoError(t, err)

	result := gateway.Load(context.Background(), path)
	require.NoError(t, result.Err)
	assert.Empty(t, result.Skipped)
	assertSameBook(t, book, result.Book)
}

func TestFileGatewaySaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewFileGateway().Save(context.Background(), filepath.Join(blocker, "recipes.json"), sampleBook(t))
	assert.ErrorIs(t, err, ErrIO)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "write", opErr.Op)
}

func TestFileGatewaySaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recipes.json")
	gateway := NewFileGateway()

	_, err := gateway.Save(ctx, path, sampleBook(t))
	require.NoError(t, err)

	_, err = gateway.Save(ctx, path, model.NewRecipeBook())
	require.NoError(t, err)

	result := gateway.Load(ctx, path)
	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.Book.Len())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileGatewayRoundTripProperty(t *testing.T) {
	dir := t.TempDir()
	gateway := NewFileGateway()

	rapid.Check(t, func(r *rapid.T) {
		book := model.NewRecipeBook()
		count := rapid.IntRange(0, 8).Draw(r, "count")
		for i := 0; i < count; i++ {
			name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,15}`).Draw(r, "name")
			category := rapid.SampledFrom(model.Categories()).Draw(r, "category")
			recipe, err := model.NewRecipe(name, category)
			if err != nil {
				r.Fatalf("NewRecipe: %v", err)
			}
			for j := rapid.IntRange(0, 3).Draw(r, "ingredients"); j > 0; j-- {
				recipe.AddIngredient(&model.Ingredient{
					Name:     rapid.StringMatching(`[a-z]{1,8}`).Draw(r, "ingredient"),
					Quantity: rapid.StringMatching(`[0-9]{1,3} [a-z]{1,5}`).Draw(r, "quantity"),
				})
			}
			if rapid.Bool().Draw(r, "hasInstructions") {
				recipe.UpdateInstructions(rapid.String().Draw(r, "instructions"))
			}
			_ = book.Add(recipe)
		}

		path := filepath.Join(dir, "roundtrip.json")
		if _, err := gateway.Save(context.Background(), path, book); err != nil {
			r.Fatalf("Save: %v", err)
		}
		result := gateway.Load(context.Background(), path)
		if result.Err != nil {
			r.Fatalf("Load: %v", result.Err)
		}
		assertSameBook(r, book, result.Book)
	})
}
