package services

import (
	"context"
	"time"

	"todoapp/internal/models"
	"todoapp/internal/pagination"
)

// TodoFilter holds the optional conditions for listing todos. Nil fields
// impose no constraint; set fields are ANDed together.
type TodoFilter struct {
	Search     *string
	Completed  *bool
	CategoryID *uint
	Priority   *models.Priority
}

// TodoInput holds the fields for creating a todo.
type TodoInput struct {
	Title       string
	Description *string
	CategoryID  *uint
	Priority    models.Priority
	DueDate     *time.Time
}

// TodoUpdate holds a partial update of a todo. Nil pointers leave the
// column untouched; the Clear flags set a nullable column to NULL.
type TodoUpdate struct {
	Title            *string
	Description      *string
	ClearDescription bool
	CategoryID       *uint
	ClearCategory    bool
	Priority         *models.Priority
	DueDate          *time.Time
	ClearDueDate     bool
	Completed        *bool
}

// TodoServicer defines the contract for todo-related business logic.
type TodoServicer interface {
	ListTodos(ctx context.Context, filter TodoFilter, window pagination.Window) (*pagination.Page[models.Todo], error)
	GetTodo(ctx context.Context, id uint) (*models.Todo, error)
	CreateTodo(ctx context.Context, input TodoInput) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id uint, update TodoUpdate) (*models.Todo, error)
	ToggleTodo(ctx context.Context, id uint) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, name, color string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, name, color string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// ActivityServicer defines the contract for the activity log.
type ActivityServicer interface {
	Log(ctx context.Context, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
	ListActivity(ctx context.Context, window pagination.Window) (*pagination.Page[models.ActivityLog], error)
}
