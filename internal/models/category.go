package models

import "gorm.io/gorm"

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

// Category is a named, colored label applied to todos
type Category struct {
	Base
	Name  string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Color string `gorm:"type:varchar(7);not null;default:'#3B82F6'" json:"color"`

	// Relationships
	Todos []Todo `gorm:"foreignKey:CategoryID" json:"todos,omitempty"`
}

// BeforeCreate fills in the default color
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
