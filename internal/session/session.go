// Package session manages the single time-bounded credential record. All
// authentication state flows through this store; nothing else reads it.
package session

import (
	"errors"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"gorm.io/gorm"
)

// TTL is how long a session stays valid after login.
const TTL = 24 * time.Hour

const singletonID = 1

type Manager struct {
	db  *gorm.DB
	now func() time.Time
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db, now: time.Now}
}

// NewManagerWithClock allows tests to control session expiry.
func NewManagerWithClock(db *gorm.DB, now func() time.Time) *Manager {
	return &Manager{db: db, now: now}
}

// Create overwrites any existing session with a fresh one for the user.
func (m *Manager) Create(user models.User) (models.Session, error) {
	sess := models.Session{
		ID:        singletonID,
		UserID:    user.ID,
		ExpiresAt: m.now().Add(TTL),
	}
	if err := m.db.Save(&sess).Error; err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Read returns the active session, or nil when none is persisted. An expired
// session is purged as a side effect and reported as absent.
func (m *Manager) Read() (*models.Session, error) {
	var sess models.Session
	if err := m.db.First(&sess, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !sess.ExpiresAt.After(m.now()) {
		if err := m.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the persisted session, if any.
func (m *Manager) Clear() error {
	return m.db.Delete(&models.Session{}, singletonID).Error
}
