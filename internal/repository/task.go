package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-go/internal/model"
)

var (
	// ErrTaskNotFound covers both a missing id and an id owned by another
	// user. Every query is scoped by (id, user_id), so the two cases are
	// indistinguishable here and stay that way all the way to the client.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidCategoryRef signals a category_id that references no
	// existing category.
	ErrInvalidCategoryRef = errors.New("invalid category reference")
)

// TaskRepository handles task persistence operations. All reads and writes
// carry a user_id predicate; there is no unscoped access path.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// insertTaskQuery writes the timestamps explicitly so the struct handed
// back to the caller carries the same values the row holds; relying on the
// column defaults would leave them zero in the create response.
const insertTaskQuery = `INSERT INTO tasks (id, user_id, title, description, status, category_id, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// Create inserts a new task with a generated ID and sets the ID and
// timestamps on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID, task.UserID, task.Title, task.Description, task.Status, task.CategoryID,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrInvalidCategoryRef
		}
		return err
	}

	return nil
}

// GetByID retrieves a task scoped by owner.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*model.Task, error) {
	query := `SELECT id, user_id, title, description, status, category_id, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`

	task := &model.Task{}
	var categoryID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Status, &categoryID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if categoryID.Valid {
		task.CategoryID = &categoryID.String
	}

	return task, nil
}

// listTasksQuery composes the scoped listing query. Filter comparisons are
// forced to binary collation so they stay exact and case-sensitive even if
// the columns sit under a case-insensitive server default.
func listTasksQuery(userID string, filter model.TaskFilter) (string, []any) {
	query := `SELECT t.id, t.user_id, t.title, t.description, t.status, t.category_id,
			t.created_at, t.updated_at, c.name
		FROM tasks t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?`
	args := []any{userID}

	if filter.Status != "" {
		query += ` AND BINARY t.status = ?`
		args = append(args, filter.Status)
	}
	if filter.CategoryName != "" {
		query += ` AND BINARY c.name = ?`
		args = append(args, filter.CategoryName)
	}
	query += ` ORDER BY t.created_at DESC`

	return query, args
}

// List retrieves a user's tasks with their categories joined in, newest
// first. Filters are exact matches and compose with AND.
func (r *TaskRepository) List(ctx context.Context, userID string, filter model.TaskFilter) ([]model.Task, error) {
	query, args := listTasksQuery(userID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var categoryID, categoryName sql.NullString
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
			&categoryID, &t.CreatedAt, &t.UpdatedAt, &categoryName,
		); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			t.CategoryID = &categoryID.String
			if categoryName.Valid {
				t.Category = &model.Category{ID: categoryID.String, Name: categoryName.String}
			}
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update replaces all mutable fields of a task scoped by owner. Callers
// resolve the (id, user_id) pair with GetByID first; RowsAffected cannot
// distinguish a missing row from a no-op write here.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, category_id = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.CategoryID,
		task.ID, task.UserID,
	)
	if err != nil && isForeignKeyError(err) {
		return ErrInvalidCategoryRef
	}
	return err
}

// Delete removes a task scoped by owner. Zero rows affected means the task
// does not exist or belongs to someone else.
func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// isForeignKeyError checks if a MySQL error is a foreign key violation (code 1452).
func isForeignKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "foreign key constraint fails")
}
