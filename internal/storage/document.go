package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pageza/recipebook/internal/model"
)

// Document is the persisted shape of a recipe book.
type Document struct {
	Recipes []RecipeEntry `json:"Recipes"`
}

// RecipeEntry is one persisted recipe. Category holds the ordinal on write
// and accepts the ordinal or the name on read.
type RecipeEntry struct {
	RecipeName   string             `json:"RecipeName"`
	Category     json.RawMessage    `json:"Category"`
	Ingredients  []model.Ingredient `json:"Ingredients"`
	Instructions *string            `json:"Instructions"`
}

// SkippedEntry records a recipe left out of a save or a load.
type SkippedEntry struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// EncodeDocument serializes the recipes with non-blank names, reporting the
// rest as skipped.
func EncodeDocument(recipes []*model.Recipe) ([]byte, []SkippedEntry, error) {
	doc := Document{Recipes: []RecipeEntry{}}
	var skipped []SkippedEntry

	for i, r := range recipes {
		if !r.HasValidName() {
			skipped = append(skipped, SkippedEntry{Index: i, Reason: "recipe name is empty"})
			continue
		}
		category, err := json.Marshal(r.Category)
		if err != nil {
			skipped = append(skipped, SkippedEntry{Index: i, Name: r.Name(), Reason: err.Error()})
			continue
		}
		ingredients := r.Ingredients
		if ingredients == nil {
			ingredients = []model.Ingredient{}
		}
		doc.Recipes = append(doc.Recipes, RecipeEntry{
			RecipeName:   r.Name(),
			Category:     category,
			Ingredients:  ingredients,
			Instructions: r.Instructions,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, skipped, fmt.Errorf("failed to marshal recipe document: %w", err)
	}
	return data, skipped, nil
}

// DecodeDocument parses a persisted document into a book. Entries with blank
// names, unknown categories or repeated names are dropped and reported. An
// empty or null document yields an empty book.
func DecodeDocument(data []byte) (*model.RecipeBook, []SkippedEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.NewRecipeBook(), nil, nil
	}

	var doc *Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return model.NewRecipeBook(), nil, nil
	}

	book, skipped := BuildBook(doc.Recipes)
	return book, skipped, nil
}

// BuildBook restores recipes from entries in order.
func BuildBook(entries []RecipeEntry) (*model.RecipeBook, []SkippedEntry) {
	book := model.NewRecipeBook()
	var skipped []SkippedEntry

	for i, entry := range entries {
		recipe, err := entry.toRecipe()
		if err == nil {
			err = book.Add(recipe)
		}
		if err != nil {
			skipped = append(skipped, SkippedEntry{Index: i, Name: entry.RecipeName, Reason: err.Error()})
		}
	}
	return book, skipped
}

func (e RecipeEntry) toRecipe() (*model.Recipe, error) {
	category := model.Appetizer
	if len(e.Category) > 0 && string(e.Category) != "null" {
		if err := json.Unmarshal(e.Category, &category); err != nil {
			return nil, err
		}
	}

	recipe, err := model.NewRecipe(e.RecipeName, category)
	if err != nil {
		return nil, err
	}
	for i := range e.Ingredients {
		recipe.AddIngredient(&e.Ingredients[i])
	}
	recipe.Instructions = e.Instructions
	return recipe, nil
}

// CategoryOrdinal is the raw JSON form of a category ordinal.
func CategoryOrdinal(n int) json.RawMessage {
	return json.RawMessage(strconv.Itoa(n))
}
