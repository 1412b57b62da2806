package models

import "time"

const (
	ComponentStatusOperational         = "Operational"
	ComponentStatusMaintenanceRequired = "Maintenance Required"
	ComponentStatusFailed              = "Failed"
)

type Component struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	ShipID              string     `gorm:"not null;index" json:"shipId"`
	Name                string     `gorm:"not null" json:"name"`
	SerialNumber        string     `gorm:"not null" json:"serialNumber"`
	InstallDate         time.Time  `json:"installDate"`
	LastMaintenanceDate time.Time  `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate,omitempty"`
	Status              string     `gorm:"not null" json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func ValidComponentStatus(status string) bool {
	switch status {
	case ComponentStatusOperational, ComponentStatusMaintenanceRequired, ComponentStatusFailed:
		return true
	}
	return false
}
