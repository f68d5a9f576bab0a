package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/logger"
	"todoapp/internal/models"
	"todoapp/internal/pagination"
)

// Activity actions.
const (
	ActionCreateTodo     = "CREATE_TODO"
	ActionUpdateTodo     = "UPDATE_TODO"
	ActionToggleTodo     = "TOGGLE_TODO"
	ActionDeleteTodo     = "DELETE_TODO"
	ActionCreateCategory = "CREATE_CATEGORY"
	ActionUpdateCategory = "UPDATE_CATEGORY"
	ActionDeleteCategory = "DELETE_CATEGORY"
)

// Activity resource types.
const (
	ResourceTodo     = "todo"
	ResourceCategory = "category"
)

// activityService handles activity log recording.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// Log records an activity entry. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *activityService) Log(ctx context.Context, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal activity changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.ActivityLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create activity log entry",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// ListActivity returns one page of activity entries, newest first.
func (s *activityService) ListActivity(ctx context.Context, window pagination.Window) (*pagination.Page[models.ActivityLog], error) {
	if err := window.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.ActivityLog
	if err := db.Order("created_at DESC").
		Order("id DESC").
		Scopes(pagination.Paginate(window)).
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return pagination.NewPage(entries, window, total), nil
}
