package service

import (
	"context"

	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/storage"
)

// IRecipeService defines the catalog operations shared by the shell and the HTTP API
type IRecipeService interface {
	Add(ctx context.Context, req *AddRecipeRequest) (*model.Recipe, error)
	List(ctx context.Context) []*model.Recipe
	Find(ctx context.Context, name string) (*model.Recipe, error)
	FindByCategory(ctx context.Context, category model.Category) ([]*model.Recipe, error)
	Remove(ctx context.Context, name string) error
	Load(ctx context.Context) (*LoadSummary, error)
	Save(ctx context.Context) (*storage.SaveReport, error)
	Location() string
}
