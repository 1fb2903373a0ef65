package api

import (
	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/storage"
)

// IngredientResponse is one ingredient of a recipe response
type IngredientResponse struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// RecipeResponse represents the response structure for recipe-related API endpoints
type RecipeResponse struct {
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	CategoryValue int                  `json:"category_value"`
	Ingredients   []IngredientResponse `json:"ingredients"`
	Instructions  *string              `json:"instructions"`
}

// SaveResponse reports the outcome of persisting the catalog
type SaveResponse struct {
	Location string                 `json:"location"`
	Saved    int                    `json:"saved"`
	Skipped  []storage.SkippedEntry `json:"skipped,omitempty"`
}

func newRecipeResponse(r *model.Recipe) RecipeResponse {
	ingredients := make([]IngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, IngredientResponse{Name: ing.Name, Quantity: ing.Quantity})
	}
	return RecipeResponse{
		Name:          r.Name(),
		Category:      r.Category.Label(),
		CategoryValue: int(r.Category),
		Ingredients:   ingredients,
		Instructions:  r.Instructions,
	}
}

func newRecipeResponses(recipes []*model.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, newRecipeResponse(r))
	}
	return out
}
