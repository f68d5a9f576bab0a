package models

// ActivityLog records a mutation performed through the API.
type ActivityLog struct {
	Base
	Action       string `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType string `gorm:"type:varchar(20);not null" json:"resource_type"`
	ResourceID   uint   `gorm:"not null" json:"resource_id"`
	IPAddress    string `gorm:"type:varchar(45)" json:"ip_address"`
	Changes      string `gorm:"type:text" json:"changes,omitempty"`
}
