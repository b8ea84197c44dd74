package service

import (
	"context"
	"testing"

	"github.com/taskhive/taskhive-go/internal/model"
	"github.com/taskhive/taskhive-go/internal/repository"
)

func newTestTaskService() *TaskService {
	return NewTaskService(repository.NewTaskRepository(nil))
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	svc := newTestTaskService()

	_, err := svc.Create(context.Background(), "user-1", model.CreateTaskRequest{
		Title:       "",
		Description: "write the report",
	})

	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestCreateTask_EmptyDescription(t *testing.T) {
	svc := newTestTaskService()

	_, err := svc.Create(context.Background(), "user-1", model.CreateTaskRequest{
		Title:       "write report",
		Description: "",
	})

	if err != ErrDescriptionRequired {
		t.Errorf("expected ErrDescriptionRequired, got %v", err)
	}
}

func TestUpdateTask_EmptyTitle(t *testing.T) {
	svc := newTestTaskService()

	err := svc.Update(context.Background(), "user-1", "task-1", model.UpdateTaskRequest{
		Title:       "",
		Description: "d",
		Status:      model.StatusPending,
	})

	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestUpdateTask_EmptyDescription(t *testing.T) {
	svc := newTestTaskService()

	err := svc.Update(context.Background(), "user-1", "task-1", model.UpdateTaskRequest{
		Title:       "t",
		Description: "",
		Status:      model.StatusPending,
	})

	if err != ErrDescriptionRequired {
		t.Errorf("expected ErrDescriptionRequired, got %v", err)
	}
}

func TestUpdateTask_InvalidStatus(t *testing.T) {
	svc := newTestTaskService()

	for _, status := range []string{"", "done", "PENDING", "in-progress"} {
		err := svc.Update(context.Background(), "user-1", "task-1", model.UpdateTaskRequest{
			Title:       "t",
			Description: "d",
			Status:      status,
		})

		if err != ErrInvalidStatus {
			t.Errorf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestTasksToResponse_EmptySlice(t *testing.T) {
	result := tasksToResponse(nil)

	if result == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(result))
	}
}

func TestTaskToResponse_EmbedsCategory(t *testing.T) {
	categoryID := "cat-1"
	task := model.Task{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "write report",
		Description: "quarterly numbers",
		Status:      model.StatusPending,
		CategoryID:  &categoryID,
		Category:    &model.Category{ID: categoryID, Name: "Work"},
	}

	resp := taskToResponse(task)

	if resp.Category == nil {
		t.Fatal("expected embedded category, got nil")
	}
	if resp.Category.Name != "Work" {
		t.Errorf("expected category name %q, got %q", "Work", resp.Category.Name)
	}
	if resp.CategoryID == nil || *resp.CategoryID != categoryID {
		t.Errorf("expected categoryId %q, got %v", categoryID, resp.CategoryID)
	}
}

func TestTaskToResponse_NoCategory(t *testing.T) {
	resp := taskToResponse(model.Task{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "write report",
		Description: "quarterly numbers",
		Status:      model.StatusCompleted,
	})

	if resp.Category != nil {
		t.Errorf("expected nil category, got %+v", resp.Category)
	}
	if resp.CategoryID != nil {
		t.Errorf("expected nil categoryId, got %v", resp.CategoryID)
	}
}
