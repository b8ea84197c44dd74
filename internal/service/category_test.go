package service

import (
	"context"
	"testing"

	"github.com/taskhive/taskhive-go/internal/model"
	"github.com/taskhive/taskhive-go/internal/repository"
)

func TestCreateCategory_EmptyName(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(nil))

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: ""})

	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}
