package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/storage"
)

// IngredientInput is one ingredient of an AddRecipeRequest.
type IngredientInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// AddRecipeRequest carries everything needed to create a recipe.
type AddRecipeRequest struct {
	Name         string            `json:"name"`
	Category     *model.Category   `json:"category"`
	Ingredients  []IngredientInput `json:"ingredients"`
	Instructions *string           `json:"instructions"`
}

// LoadSummary describes the book that replaced the in-memory catalog.
type LoadSummary struct {
	Location string                 `json:"location"`
	Loaded   int                    `json:"loaded"`
	Skipped  []storage.SkippedEntry `json:"skipped,omitempty"`
}

// RecipeService owns the recipe book and its persistence location. All
// methods are safe for concurrent use; returned recipes are copies.
type RecipeService struct {
	mu       sync.Mutex
	book     *model.RecipeBook
	store    *storage.AsyncGateway
	location string
}

// NewRecipeService creates a service with an empty book persisted through
// gateway at location.
func NewRecipeService(gateway storage.Gateway, location string) *RecipeService {
	return &RecipeService{
		book:     model.NewRecipeBook(),
		store:    storage.NewAsyncGateway(gateway),
		location: location,
	}
}

// Location returns where the book is loaded from and saved to.
func (s *RecipeService) Location() string {
	return s.location
}

// Add builds a recipe from req and adds it to the book. Nothing is added
// when any part of the request is invalid.
func (s *RecipeService) Add(ctx context.Context, req *AddRecipeRequest) (*model.Recipe, error) {
	recipe, err := buildRecipe(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.Add(recipe); err != nil {
		return nil, fmt.Errorf("%w: %q", err, recipe.Name())
	}
	logger.Info("recipe added", "name", recipe.Name(), "category", recipe.Category.Label())
	return recipe.Clone(), nil
}

func buildRecipe(req *AddRecipeRequest) (*model.Recipe, error) {
	if req == nil {
		return nil, &model.ValidationError{Field: "request", Message: "request body is required"}
	}
	if req.Category == nil {
		return nil, &model.ValidationError{Field: "category", Message: "category is required"}
	}

	recipe, err := model.NewRecipe(req.Name, *req.Category)
	if err != nil {
		return nil, err
	}
	for i, in := range req.Ingredients {
		ing, err := model.NewIngredient(in.Name, in.Quantity)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i+1, err)
		}
		recipe.AddIngredient(ing)
	}
	if req.Instructions != nil {
		recipe.UpdateInstructions(*req.Instructions)
	}
	return recipe, nil
}

// List returns every recipe in insertion order.
func (s *RecipeService) List(ctx context.Context) []*model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.book.List())
}

// Find looks a recipe up by name, ignoring case.
func (s *RecipeService) Find(ctx context.Context, name string) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.book.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrNotFound, name)
	}
	return recipe.Clone(), nil
}

// FindByCategory returns the recipes in category, in insertion order.
func (s *RecipeService) FindByCategory(ctx context.Context, category model.Category) ([]*model.Recipe, error) {
	if !category.IsValid() {
		return nil, &model.ValidationError{Field: "category", Message: "unknown category " + category.String()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.book.FindByCategory(category)), nil
}

// Remove deletes the recipe with name.
func (s *RecipeService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.Remove(name); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	logger.Info("recipe removed", "name", name)
	return nil
}

// Load replaces the book with the one stored at the service location. When
// the stored document cannot be read or parsed the current book is kept and
// the error is returned.
func (s *RecipeService) Load(ctx context.Context) (*LoadSummary, error) {
	result := <-s.store.LoadAsync(ctx, s.location)
	if result.Err != nil {
		return nil, result.Err
	}

	s.mu.Lock()
	s.book = result.Book
	s.mu.Unlock()

	summary := &LoadSummary{
		Location: s.location,
		Loaded:   result.Book.Len(),
		Skipped:  result.Skipped,
	}
	logger.Info("recipe book loaded", "location", s.location, "recipes", summary.Loaded, "skipped", len(summary.Skipped))
	return summary, nil
}

// Save writes the book to the service location and waits for the result.
func (s *RecipeService) Save(ctx context.Context) (*storage.SaveReport, error) {
	outcome := <-s.SaveAsync(ctx)
	return outcome.Report, outcome.Err
}

// SaveAsync starts saving a snapshot of the book. The book can be changed
// again as soon as it returns.
func (s *RecipeService) SaveAsync(ctx context.Context) <-chan storage.SaveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SaveAsync(ctx, s.location, s.book)
}

func cloneAll(recipes []*model.Recipe) []*model.Recipe {
	out := make([]*model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Clone())
	}
	return out
}
