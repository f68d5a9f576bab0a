package models

import (
	"time"

	"gorm.io/gorm"
)

// Priority is the urgency level of a todo
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a task with a completion state, an optional category and an
// optional due date.
type Todo struct {
	Base
	Title       string     `gorm:"type:varchar(255);not null;index" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Completed   bool       `gorm:"not null;default:false;index" json:"completed"`
	CategoryID  *uint      `gorm:"index" json:"category_id"`
	Priority    Priority   `gorm:"type:varchar(10);not null;default:'medium';index" json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category"`
}

// BeforeCreate applies the default priority
func (t *Todo) BeforeCreate(_ *gorm.DB) error {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return nil
}
