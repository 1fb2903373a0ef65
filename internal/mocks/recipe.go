package mocks

import (
	"context"

	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/service"
	"github.com/pageza/recipebook/internal/storage"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

var _ service.IRecipeService = (*MockRecipeService)(nil)

// Add mocks the Add method
func (m *MockRecipeService) Add(ctx context.Context, req *service.AddRecipeRequest) (*model.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context) []*model.Recipe {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

// Find mocks the Find method
func (m *MockRecipeService) Find(ctx context.Context, name string) (*model.Recipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// FindByCategory mocks the FindByCategory method
func (m *MockRecipeService) FindByCategory(ctx context.Context, category model.Category) ([]*model.Recipe, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// Remove mocks the Remove method
func (m *MockRecipeService) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// Load mocks the Load method
func (m *MockRecipeService) Load(ctx context.Context) (*service.LoadSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoadSummary), args.Error(1)
}

// Save mocks the Save method
func (m *MockRecipeService) Save(ctx context.Context) (*storage.SaveReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.SaveReport), args.Error(1)
}

// Location mocks the Location method
func (m *MockRecipeService) Location() string {
	args := m.Called()
	return args.String(0)
}
