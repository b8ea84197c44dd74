package service

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive-go/internal/model"
	"github.com/taskhive/taskhive-go/internal/repository"
)

var ErrNameRequired = errors.New("name is required")

// CategoryService handles category business logic.
type CategoryService struct {
	repo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create creates a category. Any authenticated user may create one, and
// names are deliberately not unique.
func (s *CategoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (model.CategoryResponse, error) {
	if req.Name == "" {
		return model.CategoryResponse{}, ErrNameRequired
	}

	category := model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, &category); err != nil {
		return model.CategoryResponse{}, err
	}

	return model.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}, nil
}

// List returns the categories visible to the user, i.e. those referenced
// by at least one of their tasks.
func (s *CategoryService) List(ctx context.Context, userID string) ([]model.CategoryResponse, error) {
	categories, err := s.repo.ListVisibleToUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = model.CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return result, nil
}
