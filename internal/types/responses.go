package types

import "github.com/fleetdeck-dev/fleetdeck/internal/models"

type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	RoleLabel string      `json:"role_label"`
}
