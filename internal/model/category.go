package model

// Category represents a category row in the database. Categories are a
// shared dimension: any authenticated user may create one, and a user sees
// a category only through their own tasks.
type Category struct {
	ID   string
	Name string
}

// CreateCategoryRequest represents a category creation request.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
