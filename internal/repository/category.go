package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-go/internal/model"
)

// CategoryRepository handles category persistence operations.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category with a generated ID and sets it on the
// category struct. Names are not unique; categories are a shared dimension.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	category.ID = uuid.NewString()

	query := `INSERT INTO categories (id, name) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name)
	return err
}

// ListVisibleToUser retrieves the categories referenced by at least one of
// the user's tasks. A category with no tasks for this user is invisible to
// them even though it exists.
func (r *CategoryRepository) ListVisibleToUser(ctx context.Context, userID string) ([]model.Category, error) {
	query := `SELECT DISTINCT c.id, c.name
		FROM categories c
		JOIN tasks t ON t.category_id = c.id
		WHERE t.user_id = ?
		ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
