package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"todoapp/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name and the default color.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// TodoOption customizes a fixture todo before it is inserted.
type TodoOption func(*models.Todo)

// WithCategory assigns the todo to a category.
func WithCategory(categoryID uint) TodoOption {
	return func(todo *models.Todo) { todo.CategoryID = &categoryID }
}

// WithPriority sets the todo priority.
func WithPriority(p models.Priority) TodoOption {
	return func(todo *models.Todo) { todo.Priority = p }
}

// WithTitle sets the todo title.
func WithTitle(title string) TodoOption {
	return func(todo *models.Todo) { todo.Title = title }
}

// Completed marks the todo as done.
func Completed() TodoOption {
	return func(todo *models.Todo) { todo.Completed = true }
}

// CreatedAt pins the creation timestamp, for ordering tests.
func CreatedAt(ts time.Time) TodoOption {
	return func(todo *models.Todo) { todo.CreatedAt = ts }
}

// CreateTestTodo creates a medium-priority, uncompleted todo with a unique title.
func CreateTestTodo(t *testing.T, db *gorm.DB, opts ...TodoOption) *models.Todo {
	t.Helper()

	todo := &models.Todo{
		Title:    fmt.Sprintf("Test Todo %d", nextID()),
		Priority: models.PriorityMedium,
	}
	for _, opt := range opts {
		opt(todo)
	}

	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create test todo: %v", err)
	}
	return todo
}
