package model

import "time"

// Task status values as stored. A new task defaults to StatusPending.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a task row in the database.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category is populated by joined reads, not a column of its own.
	Category *Category
}

// CreateTaskRequest represents a task creation request. The owner is never
// taken from the client; it comes from the authenticated request context.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  *string `json:"categoryId"`
}

// UpdateTaskRequest represents a full-replacement task update request.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CategoryID  *string `json:"categoryId"`
}

// TaskFilter restricts a task listing. Zero-value fields do not filter.
// Both matches are exact and case-sensitive, and compose with AND.
type TaskFilter struct {
	Status       string
	CategoryName string
}

// TaskResponse represents a task in API responses, with its category
// embedded when one is assigned.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	UserID      string            `json:"userId"`
	CategoryID  *string           `json:"categoryId"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// MessageResponse represents a confirmation message for mutations that
// return no resource body (task update and delete).
type MessageResponse struct {
	Message string `json:"message"`
}
