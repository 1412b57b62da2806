package store

import (
	"errors"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ListShips() ([]models.Ship, error) {
	var ships []models.Ship
	if err := s.db.Order("created_at").Find(&ships).Error; err != nil {
		return nil, err
	}
	return ships, nil
}

func (s *Store) GetShip(id string) (*models.Ship, error) {
	var ship models.Ship
	if err := s.db.First(&ship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &ship, nil
}

// CreateShip assigns a fresh id and persists the ship. Caller-supplied id and
// timestamps are ignored.
func (s *Store) CreateShip(ship models.Ship) (models.Ship, error) {
	id, err := newID(shipIDPrefix)
	if err != nil {
		return models.Ship{}, err
	}

	ship.ID = id
	ship.CreatedAt = s.now()
	ship.UpdatedAt = ship.CreatedAt

	if err := s.db.Create(&ship).Error; err != nil {
		return models.Ship{}, err
	}

	return ship, nil
}

type ShipPatch struct {
	Name   *string
	IMO    *string
	Flag   *string
	Status *string
}

func (s *Store) UpdateShip(id string, patch ShipPatch) (*models.Ship, error) {
	ship, err := s.GetShip(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		ship.Name = *patch.Name
	}
	if patch.IMO != nil {
		ship.IMO = *patch.IMO
	}
	if patch.Flag != nil {
		ship.Flag = *patch.Flag
	}
	if patch.Status != nil {
		ship.Status = *patch.Status
	}
	ship.UpdatedAt = s.now()

	if err := s.db.Save(ship).Error; err != nil {
		return nil, err
	}

	return ship, nil
}

// DeleteShip removes the ship and cascades to its components and jobs. The
// two child filters run independently: jobs are matched by ship id directly,
// not through each component.
func (s *Store) DeleteShip(id string) (bool, error) {
	res := s.db.Delete(&models.Ship{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if err := s.db.Delete(&models.Component{}, "ship_id = ?", id).Error; err != nil {
		return true, err
	}
	if err := s.db.Delete(&models.Job{}, "ship_id = ?", id).Error; err != nil {
		return true, err
	}

	return true, nil
}
