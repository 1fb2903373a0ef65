package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	recipe, err := NewRecipe("Pancakes", MainCourse)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", recipe.Name())
	assert.Equal(t, MainCourse, recipe.Category)
	assert.Empty(t, recipe.Ingredients)
	assert.Nil(t, recipe.Instructions)
}

func TestNewRecipeRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		recipe, err := NewRecipe(name, MainCourse)
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, ErrValidation)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "name", vErr.Field)
	}
}

func TestNewRecipeRejectsUnknownCategory(t *testing.T) {
	_, err := NewRecipe("Soup", Category(7))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddIngredient(t *testing.T) {
	recipe, err := NewRecipe("Pancakes", MainCourse)
	require.NoError(t, err)

	flour, err := NewIngredient("Flour", "2 cups")
	require.NoError(t, err)
	recipe.AddIngredient(flour)

	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "Flour", recipe.Ingredients[0].Name)
	assert.Equal(t, "2 cups", recipe.Ingredients[0].Quantity)
}

func TestAddIngredientNilIsNoop(t *testing.T) {
	recipe, err := NewRecipe("Pancakes", MainCourse)
	require.NoError(t, err)

	recipe.AddIngredient(nil)
	assert.Empty(t, recipe.Ingredients)
}

func TestAddIngredientAllowsDuplicates(t *testing.T) {
	recipe, err := NewRecipe("Bread", MainCourse)
	require.NoError(t, err)

	salt := &Ingredient{Name: "Salt", Quantity: "1 tsp"}
	recipe.AddIngredient(salt)
	recipe.AddIngredient(salt)
	assert.Len(t, recipe.Ingredients, 2)
}

func TestUpdateInstructions(t *testing.T) {
	recipe, err := NewRecipe("Pancakes", MainCourse)
	require.NoError(t, err)
	assert.Equal(t, "", recipe.InstructionsText())

	recipe.UpdateInstructions("Mix and fry.")
	assert.Equal(t, "Mix and fry.", recipe.InstructionsText())

	recipe.UpdateInstructions("")
	require.NotNil(t, recipe.Instructions)
	assert.Equal(t, "", *recipe.Instructions)
}

func TestRecipeClone(t *testing.T) {
	recipe, err := NewRecipe("Pancakes", MainCourse)
	require.NoError(t, err)
	recipe.AddIngredient(&Ingredient{Name: "Flour", Quantity: "2 cups"})
	recipe.UpdateInstructions("Mix")

	clone := recipe.Clone()
	clone.Ingredients[0].Quantity = "3 cups"
	*clone.Instructions = "Stir"

	assert.Equal(t, "2 cups", recipe.Ingredients[0].Quantity)
	assert.Equal(t, "Mix", recipe.InstructionsText())
	assert.Equal(t, "Pancakes", clone.Name())
}

func TestNewIngredient(t *testing.T) {
	ing, err := NewIngredient("Sugar", "100g")
	require.NoError(t, err)
	assert.Equal(t, Ingredient{Name: "Sugar", Quantity: "100g"}, *ing)

	_, err = NewIngredient(" ", "100g")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewIngredient("Sugar", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ingredient.quantity", vErr.Field)
}
