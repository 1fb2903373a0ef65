package model

import (
	"strings"

	"github.com/pageza/recipebook/internal/logger"
)

// RecipeBook is an insertion-ordered set of recipes keyed by case-insensitive
// name. The name index mirrors the slice; both are only touched by Add and
// Remove.
type RecipeBook struct {
	recipes []*Recipe
	byName  map[string]*Recipe
}

// NewRecipeBook returns an empty book.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{
		recipes: []*Recipe{},
		byName:  make(map[string]*Recipe),
	}
}

// NormalizeName is the index key for a recipe name. Matching ignores case
// only; surrounding whitespace is part of the name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// Add appends recipe unless its name is blank or already taken.
func (b *RecipeBook) Add(recipe *Recipe) error {
	if !recipe.HasValidName() {
		logger.Warn("recipe name cannot be empty")
		return newValidationError("name", "recipe name cannot be empty")
	}

	key := NormalizeName(recipe.Name())
	if _, exists := b.byName[key]; exists {
		logger.Warn("recipe already exists", "name", recipe.Name())
		return ErrDuplicate
	}

	b.recipes = append(b.recipes, recipe)
	b.byName[key] = recipe
	return nil
}

// FindByName returns the recipe whose name matches ignoring case.
func (b *RecipeBook) FindByName(name string) (*Recipe, bool) {
	recipe, ok := b.byName[NormalizeName(name)]
	return recipe, ok
}

// FindByCategory returns the recipes in category, in book order. The result
// is never nil.
func (b *RecipeBook) FindByCategory(category Category) []*Recipe {
	matches := []*Recipe{}
	for _, r := range b.recipes {
		if r.Category == category {
			matches = append(matches, r)
		}
	}
	return matches
}

// Remove deletes the recipe with the given name, or returns ErrNotFound and
// leaves the book unchanged.
func (b *RecipeBook) Remove(name string) error {
	key := NormalizeName(name)
	target, ok := b.byName[key]
	if !ok {
		return ErrNotFound
	}

	for i, r := range b.recipes {
		if r == target {
			b.recipes = append(b.recipes[:i], b.recipes[i+1:]...)
			break
		}
	}
	delete(b.byName, key)
	return nil
}

// List returns the recipes in insertion order. The slice is a copy; the
// recipes are not.
func (b *RecipeBook) List() []*Recipe {
	out := make([]*Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Len returns the number of recipes.
func (b *RecipeBook) Len() int {
	return len(b.recipes)
}

// Clone returns a deep copy of the book.
func (b *RecipeBook) Clone() *RecipeBook {
	c := NewRecipeBook()
	for _, r := range b.recipes {
		cp := r.Clone()
		c.recipes = append(c.recipes, cp)
		c.byName[NormalizeName(cp.Name())] = cp
	}
	return c
}
