package service

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive-go/internal/model"
	"github.com/taskhive/taskhive-go/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus       = errors.New("status must be pending or completed")
	ErrInvalidCategory     = errors.New("invalid category reference")
	ErrTaskNotFound        = errors.New("task not found")
)

// TaskService handles task business logic. The owning user always comes
// from the authenticated identity, never from the request body.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the user's tasks, optionally filtered by status and
// category name.
func (s *TaskService) List(ctx context.Context, userID string, filter model.TaskFilter) ([]model.TaskResponse, error) {
	tasks, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return tasksToResponse(tasks), nil
}

// Create creates a task owned by the given user. Title and description are
// both required; status always starts as pending.
func (s *TaskService) Create(ctx context.Context, userID string, req model.CreateTaskRequest) (model.TaskResponse, error) {
	if req.Title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}
	if req.Description == "" {
		return model.TaskResponse{}, ErrDescriptionRequired
	}

	task := model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusPending,
		CategoryID:  req.CategoryID,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		if errors.Is(err, repository.ErrInvalidCategoryRef) {
			return model.TaskResponse{}, ErrInvalidCategory
		}
		return model.TaskResponse{}, err
	}

	return taskToResponse(task), nil
}

// Update replaces all mutable fields of the user's task. A task owned by
// another user is reported exactly like a missing one.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req model.UpdateTaskRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.Description == "" {
		return ErrDescriptionRequired
	}
	if req.Status != model.StatusPending && req.Status != model.StatusCompleted {
		return ErrInvalidStatus
	}

	// Resolve the (id, owner) pair first; the write itself cannot tell a
	// missing row from an unchanged one.
	existing, err := s.repo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Status = req.Status
	existing.CategoryID = req.CategoryID

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrInvalidCategoryRef) {
			return ErrInvalidCategory
		}
		return err
	}

	return nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	err := s.repo.Delete(ctx, userID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// taskToResponse converts a Task to its API shape.
func taskToResponse(t model.Task) model.TaskResponse {
	resp := model.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Category != nil {
		resp.Category = &model.CategoryResponse{
			ID:   t.Category.ID,
			Name: t.Category.Name,
		}
	}
	return resp
}

// tasksToResponse converts a slice of Task to a slice of TaskResponse.
func tasksToResponse(tasks []model.Task) []model.TaskResponse {
	result := make([]model.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = taskToResponse(t)
	}
	return result
}
