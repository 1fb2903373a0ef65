package model

import (
	"strings"

	"github.com/pageza/recipebook/internal/logger"
)

// Recipe is a named, categorized dish with ordered ingredients and optional
// instructions. The name is fixed at construction.
type Recipe struct {
	name         string
	Category     Category
	Ingredients  []Ingredient
	Instructions *string
}

// NewRecipe creates a recipe with no ingredients and no instructions.
func NewRecipe(name string, category Category) (*Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("name", "recipe name cannot be empty")
	}
	if !category.IsValid() {
		return nil, newValidationError("category", "unknown category "+category.String())
	}
	return &Recipe{
		name:        name,
		Category:    category,
		Ingredients: []Ingredient{},
	}, nil
}

// Name returns the recipe name. The zero Recipe has an empty name.
func (r *Recipe) Name() string {
	return r.name
}

// HasValidName reports whether the name is non-blank.
func (r *Recipe) HasValidName() bool {
	return r != nil && strings.TrimSpace(r.name) != ""
}

// AddIngredient appends a copy of ing. A nil ingredient is ignored.
func (r *Recipe) AddIngredient(ing *Ingredient) {
	if ing == nil {
		logger.Warn("cannot add a nil ingredient", "recipe", r.name)
		return
	}
	r.Ingredients = append(r.Ingredients, *ing)
}

// UpdateInstructions replaces the instructions, empty text included.
func (r *Recipe) UpdateInstructions(text string) {
	r.Instructions = &text
}

// InstructionsText returns the instructions or "" when unset.
func (r *Recipe) InstructionsText() string {
	if r.Instructions == nil {
		return ""
	}
	return *r.Instructions
}

// Clone returns a deep copy.
func (r *Recipe) Clone() *Recipe {
	c := &Recipe{
		name:        r.name,
		Category:    r.Category,
		Ingredients: make([]Ingredient, len(r.Ingredients)),
	}
	copy(c.Ingredients, r.Ingredients)
	if r.Instructions != nil {
		text := *r.Instructions
		c.Instructions = &text
	}
	return c
}
