package models

import "time"

const (
	ShipStatusActive           = "Active"
	ShipStatusUnderMaintenance = "Under Maintenance"
	ShipStatusOutOfService     = "Out of Service"
)

type Ship struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	IMO       string    `gorm:"column:imo;not null" json:"imo"` // 7-digit IMO number
	Flag      string    `gorm:"not null" json:"flag"`
	Status    string    `gorm:"not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidShipStatus(status string) bool {
	switch status {
	case ShipStatusActive, ShipStatusUnderMaintenance, ShipStatusOutOfService:
		return true
	}
	return false
}
