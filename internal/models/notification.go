package models

import "time"

const (
	NotificationJobCreated   = "Job Created"
	NotificationJobUpdated   = "Job Updated"
	NotificationJobCompleted = "Job Completed"
)

type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null" json:"type"`
	Message   string    `gorm:"not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	EntityID  string    `gorm:"not null;index" json:"entityId"`
	CreatedAt time.Time `json:"createdAt"`
}
