package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/models"
	"todoapp/internal/validator"
)

const maxCategoryNameLength = 100

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns every category, oldest first
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID
func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return findCategory(s.db.WithContext(ctx), id)
}

func findCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrCategoryNameRequired
	}
	if err := validateCategoryFields(name, color); err != nil {
		return nil, err
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}

	db := s.db.WithContext(ctx)

	// Check if a category with the same name already exists
	if err := ensureNameAvailable(db, name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name, Color: color}
	if err := db.Create(category).Error; err != nil {
		return nil, translateCategoryWriteError(err)
	}
	return category, nil
}

// UpdateCategory updates the name and/or color of a category. Empty
// arguments keep the current value.
func (s *categoryService) UpdateCategory(ctx context.Context, id uint, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategoryFields(name, color); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	category, err := findCategory(db, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" && name != category.Name {
		if err := ensureNameAvailable(db, name, id); err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if color != "" {
		updates["color"] = color
	}

	if len(updates) > 0 {
		if err := db.Model(category).Updates(updates).Error; err != nil {
			return nil, translateCategoryWriteError(err)
		}
	}

	return category, nil
}

// DeleteCategory removes a category that no todo references. The row is
// locked for the duration of the check so two deletes, or a delete racing
// an assignment, cannot both observe zero dependents.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var todoCount int64
		if err := tx.Model(&models.Todo{}).Where("category_id = ?", id).Count(&todoCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if todoCount > 0 {
			return apperrors.ErrCategoryHasTodos
		}

		if err := tx.Delete(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperrors.Wrap(apperrors.ErrCategoryHasTodos, err)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func validateCategoryFields(name, color string) error {
	if len([]rune(name)) > maxCategoryNameLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name must be at most 100 characters")
	}
	if color != "" && !validator.IsHexColor(color) {
		return apperrors.ErrInvalidColor
	}
	return nil
}

// ensureNameAvailable reports a conflict when another category already
// uses name. excludeID skips the category being renamed.
func ensureNameAvailable(db *gorm.DB, name string, excludeID uint) error {
	var count int64
	q := db.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrCategoryNameTaken
	}
	return nil
}

func translateCategoryWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Wrap(apperrors.ErrCategoryNameTaken, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
