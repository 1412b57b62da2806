package models

import "time"

const (
	JobTypeInspection  = "Inspection"
	JobTypeRepair      = "Repair"
	JobTypeReplacement = "Replacement"
	JobTypeMaintenance = "Maintenance"
)

const (
	JobPriorityLow      = "Low"
	JobPriorityMedium   = "Medium"
	JobPriorityHigh     = "High"
	JobPriorityCritical = "Critical"
)

const (
	JobStatusOpen       = "Open"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCancelled  = "Cancelled"
)

type Job struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	ShipID             string     `gorm:"not null;index" json:"shipId"`
	ComponentID        string     `gorm:"not null;index" json:"componentId"`
	Type               string     `gorm:"not null" json:"type"`
	Priority           string     `gorm:"not null" json:"priority"`
	Status             string     `gorm:"not null" json:"status"`
	AssignedEngineerID string     `gorm:"not null" json:"assignedEngineerId"`
	ScheduledDate      time.Time  `json:"scheduledDate"`
	CompletionDate     *time.Time `json:"completionDate,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func ValidJobType(t string) bool {
	switch t {
	case JobTypeInspection, JobTypeRepair, JobTypeReplacement, JobTypeMaintenance:
		return true
	}
	return false
}

func ValidJobPriority(p string) bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityCritical:
		return true
	}
	return false
}

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
