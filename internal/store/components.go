package store

import (
	"errors"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListComponents() ([]models.Component, error) {
	var components []models.Component
	if err := s.db.Order("created_at").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (s *Store) ComponentsByShip(shipID string) ([]models.Component, error) {
	var components []models.Component
	if err := s.db.Where("ship_id = ?", shipID).Order("created_at").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (s *Store) GetComponent(id string) (*models.Component, error) {
	var component models.Component
	if err := s.db.First(&component, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &component, nil
}

// CreateComponent persists a new component. The referenced ship must exist.
func (s *Store) CreateComponent(component models.Component) (models.Component, error) {
	if _, err := s.GetShip(component.ShipID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return models.Component{}, errs.ErrMissingReference
		}
		return models.Component{}, err
	}

	id, err := newID(componentIDPrefix)
	if err != nil {
		return models.Component{}, err
	}

	component.ID = id
	component.CreatedAt = s.now()
	component.UpdatedAt = component.CreatedAt

	if err := s.db.Create(&component).Error; err != nil {
		return models.Component{}, err
	}

	return component, nil
}

type ComponentPatch struct {
	Name                *string
	SerialNumber        *string
	InstallDate         *time.Time
	LastMaintenanceDate *time.Time
	NextMaintenanceDate *time.Time
	Status              *string
}

func (s *Store) UpdateComponent(id string, patch ComponentPatch) (*models.Component, error) {
	component, err := s.GetComponent(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		component.Name = *patch.Name
	}
	if patch.SerialNumber != nil {
		component.SerialNumber = *patch.SerialNumber
	}
	if patch.InstallDate != nil {
		component.InstallDate = *patch.InstallDate
	}
	if patch.LastMaintenanceDate != nil {
		component.LastMaintenanceDate = *patch.LastMaintenanceDate
	}
	if patch.NextMaintenanceDate != nil {
		component.NextMaintenanceDate = patch.NextMaintenanceDate
	}
	if patch.Status != nil {
		component.Status = *patch.Status
	}
	component.UpdatedAt = s.now()

	if err := s.db.Save(component).Error; err != nil {
		return nil, err
	}

	return component, nil
}

// DeleteComponent removes the component and every job that references it.
// Jobs on other components of the same ship are untouched.
func (s *Store) DeleteComponent(id string) (bool, error) {
	res := s.db.Delete(&models.Component{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if err := s.db.Delete(&models.Job{}, "component_id = ?", id).Error; err != nil {
		return true, err
	}

	return true, nil
}

// SweepOverdueComponents marks operational components whose next maintenance
// date has passed as requiring maintenance. Returns how many were flagged.
func (s *Store) SweepOverdueComponents() (int64, error) {
	res := s.db.Model(&models.Component{}).
		Where("status = ? AND next_maintenance_date IS NOT NULL AND next_maintenance_date < ?",
			models.ComponentStatusOperational, s.now()).
		Updates(map[string]interface{}{
			"status":     models.ComponentStatusMaintenanceRequired,
			"updated_at": s.now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
