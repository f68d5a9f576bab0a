package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/models"
	"todoapp/internal/pagination"
)

const maxTitleLength = 255

// todoService handles todo-related business logic.
type todoService struct {
	db *gorm.DB
}

// NewTodoService creates a new TodoServicer.
func NewTodoService(db *gorm.DB) TodoServicer {
	return &todoService{db: db}
}

// ListTodos returns one page of todos matching the filter, newest first,
// with each todo's category loaded.
func (s *todoService) ListTodos(ctx context.Context, filter TodoFilter, window pagination.Window) (*pagination.Page[models.Todo], error) {
	if err := window.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	query := func() *gorm.DB {
		return applyTodoFilters(s.db.WithContext(ctx).Model(&models.Todo{}), filter)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var todos []models.Todo
	if err := query().
		Preload("Category").
		Order("created_at DESC").
		Order("id DESC").
		Scopes(pagination.Paginate(window)).
		Find(&todos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return pagination.NewPage(todos, window, total), nil
}

func applyTodoFilters(q *gorm.DB, f TodoFilter) *gorm.DB {
	if f.Search != nil {
		if term := strings.TrimSpace(*f.Search); term != "" {
			q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(term))+"%")
		}
	}
	if f.Completed != nil {
		q = q.Where("completed = ?", *f.Completed)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetTodo retrieves a todo by ID with its category
func (s *todoService) GetTodo(ctx context.Context, id uint) (*models.Todo, error) {
	return findTodo(s.db.WithContext(ctx), id)
}

func findTodo(db *gorm.DB, id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := db.Preload("Category").First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &todo, nil
}

// CreateTodo creates a new todo
func (s *todoService) CreateTodo(ctx context.Context, input TodoInput) (*models.Todo, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	todo := &models.Todo{
		Title:       title,
		Description: trimOptional(input.Description),
		CategoryID:  input.CategoryID,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	var created *models.Todo
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if todo.CategoryID != nil {
			if err := ensureCategoryExists(tx, *todo.CategoryID); err != nil {
				return err
			}
		}

		if err := tx.Create(todo).Error; err != nil {
			return translateTodoWriteError(err)
		}

		var err error
		created, err = findTodo(tx, todo.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTodo applies a partial update and returns the updated todo
func (s *todoService) UpdateTodo(ctx context.Context, id uint, update TodoUpdate) (*models.Todo, error) {
	updates := make(map[string]interface{})

	if update.Title != nil {
		title, err := normalizeTitle(*update.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if update.ClearDescription {
		updates["description"] = nil
	} else if update.Description != nil {
		updates["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Priority != nil {
		if !update.Priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
		updates["priority"] = *update.Priority
	}
	if update.ClearDueDate {
		updates["due_date"] = nil
	} else if update.DueDate != nil {
		updates["due_date"] = *update.DueDate
	}
	if update.Completed != nil {
		updates["completed"] = *update.Completed
	}
	if update.ClearCategory {
		updates["category_id"] = nil
	} else if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}

	var updated *models.Todo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findTodo(tx, id); err != nil {
			return err
		}

		if !update.ClearCategory && update.CategoryID != nil {
			if err := ensureCategoryExists(tx, *update.CategoryID); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Todo{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return translateTodoWriteError(err)
			}
		}

		var err error
		updated, err = findTodo(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleTodo flips the completed flag in a single UPDATE so concurrent
// toggles never lose a flip.
func (s *todoService) ToggleTodo(ctx context.Context, id uint) (*models.Todo, error) {
	var toggled *models.Todo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Todo{}).
			Where("id = ?", id).
			Update("completed", gorm.Expr("NOT completed"))
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTodoNotFound
		}

		var err error
		toggled, err = findTodo(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// DeleteTodo permanently removes a todo
func (s *todoService) DeleteTodo(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Todo{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", apperrors.ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Title must be at most 255 characters")
	}
	return title, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// ensureCategoryExists checks a category reference inside the write
// transaction. The foreign key backs this up at commit time.
func ensureCategoryExists(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrInvalidCategory
	}
	return nil
}

func translateTodoWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.Wrap(apperrors.ErrInvalidCategory, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
