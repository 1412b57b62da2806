package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/db"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Connect(filepath.Join(t.TempDir(), "fleetdeck_test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func TestReadEmpty(t *testing.T) {
	m := NewManager(newTestDB(t))

	sess, err := m.Read()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCreateAndRead(t *testing.T) {
	conn := newTestDB(t)

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m := NewManagerWithClock(conn, func() time.Time { return base })

	created, err := m.Create(models.User{ID: "1", Email: "admin@entnt.in"})
	require.NoError(t, err)
	assert.Equal(t, "1", created.UserID)
	assert.Equal(t, base.Add(TTL), created.ExpiresAt)

	sess, err := m.Read()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "1", sess.UserID)
}

func TestCreateOverwritesPreviousSession(t *testing.T) {
	conn := newTestDB(t)
	m := NewManager(conn)

	_, err := m.Create(models.User{ID: "1"})
	require.NoError(t, err)
	_, err = m.Create(models.User{ID: "2"})
	require.NoError(t, err)

	sess, err := m.Read()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "2", sess.UserID)

	var count int64
	require.NoError(t, conn.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReadPurgesExpiredSession(t *testing.T) {
	conn := newTestDB(t)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m := NewManagerWithClock(conn, func() time.Time { return now })

	_, err := m.Create(models.User{ID: "1"})
	require.NoError(t, err)

	// Still valid one second before the deadline.
	now = now.Add(TTL - time.Second)
	sess, err := m.Read()
	require.NoError(t, err)
	assert.NotNil(t, sess)

	// Exactly at the deadline the session is gone and the row is purged.
	now = now.Add(time.Second)
	sess, err = m.Read()
	require.NoError(t, err)
	assert.Nil(t, sess)

	var count int64
	require.NoError(t, conn.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestClear(t *testing.T) {
	m := NewManager(newTestDB(t))

	_, err := m.Create(models.User{ID: "1"})
	require.NoError(t, err)

	require.NoError(t, m.Clear())

	sess, err := m.Read()
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Clearing an empty store is fine.
	require.NoError(t, m.Clear())
}
