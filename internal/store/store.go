// Package store is the CRUD and cascade layer over the embedded database.
// Ships, components, jobs, notifications and users live here; job mutations
// additionally emit notifications.
package store

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// NewWithClock allows tests to control time-dependent queries.
func NewWithClock(db *gorm.DB, now func() time.Time) *Store {
	return &Store{db: db, now: now}
}

// Record id prefixes, one per collection.
const (
	shipIDPrefix         = "s"
	componentIDPrefix    = "c"
	jobIDPrefix          = "j"
	notificationIDPrefix = "n"
)

func newID(prefix string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return prefix + id.String(), nil
}
