package models

import (
	"time"
)

// Base contains the columns shared by every table: an auto-incremented
// surrogate key and the creation timestamp.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
