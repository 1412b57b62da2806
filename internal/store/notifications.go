package store

import (
	"errors"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"gorm.io/gorm"
)

// emitNotification records a job lifecycle event. Only job mutations may emit;
// the notification surface exposes no way to write arbitrary entries.
func (s *Store) emitNotification(notificationType, message, entityID string) error {
	id, err := newID(notificationIDPrefix)
	if err != nil {
		return err
	}

	notification := models.Notification{
		ID:        id,
		Type:      notificationType,
		Message:   message,
		IsRead:    false,
		EntityID:  entityID,
		CreatedAt: s.now(),
	}

	return s.db.Create(&notification).Error
}

// ListNotifications returns notifications newest first.
func (s *Store) ListNotifications() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *Store) UnreadNotificationCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (s *Store) MarkNotificationRead(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	notification.IsRead = true

	if err := s.db.Save(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

func (s *Store) MarkAllNotificationsRead() error {
	return s.db.Model(&models.Notification{}).Where("is_read = ?", false).
		Update("is_read", true).Error
}

func (s *Store) DeleteNotification(id string) (bool, error) {
	res := s.db.Delete(&models.Notification{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
