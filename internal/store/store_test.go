package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/db"
	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Connect(filepath.Join(t.TempDir(), "fleetdeck_test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return New(conn)
}

func createShip(t *testing.T, s *Store, name string) models.Ship {
	t.Helper()

	ship, err := s.CreateShip(models.Ship{
		Name:   name,
		IMO:    "9811000",
		Flag:   "Panama",
		Status: models.ShipStatusActive,
	})
	require.NoError(t, err)

	return ship
}

func createComponent(t *testing.T, s *Store, shipID, name string) models.Component {
	t.Helper()

	component, err := s.CreateComponent(models.Component{
		ShipID:              shipID,
		Name:                name,
		SerialNumber:        "SN-0001",
		InstallDate:         time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
		LastMaintenanceDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:              models.ComponentStatusOperational,
	})
	require.NoError(t, err)

	return component
}

func createJob(t *testing.T, s *Store, shipID, componentID string) models.Job {
	t.Helper()

	job, err := s.CreateJob(models.Job{
		ShipID:             shipID,
		ComponentID:        componentID,
		Type:               models.JobTypeInspection,
		Priority:           models.JobPriorityHigh,
		Status:             models.JobStatusOpen,
		AssignedEngineerID: "3",
		ScheduledDate:      time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return job
}

func TestCreateShipAssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")

	assert.Regexp(t, "^s.", ship.ID)
	assert.False(t, ship.CreatedAt.IsZero())
	assert.Equal(t, ship.CreatedAt, ship.UpdatedAt)

	got, err := s.GetShip(ship.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ever Given", got.Name)
}

func TestGetShipNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetShip("s-missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateShipEmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")

	updated, err := s.UpdateShip(ship.ID, ShipPatch{})
	require.NoError(t, err)

	assert.Equal(t, ship.Name, updated.Name)
	assert.Equal(t, ship.IMO, updated.IMO)
	assert.Equal(t, ship.Flag, updated.Flag)
	assert.Equal(t, ship.Status, updated.Status)
	assert.Equal(t, ship.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.False(t, updated.UpdatedAt.Before(ship.UpdatedAt))
}

func TestUpdateShipNotFound(t *testing.T) {
	s := newTestStore(t)

	name := "Ghost Ship"
	_, err := s.UpdateShip("s-missing", ShipPatch{Name: &name})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteShipCascadesComponentsAndJobs(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	other := createShip(t, s, "Maersk Alabama")

	component := createComponent(t, s, ship.ID, "Main Engine")
	otherComponent := createComponent(t, s, other.ID, "Radar")

	job := createJob(t, s, ship.ID, component.ID)
	otherJob := createJob(t, s, other.ID, otherComponent.ID)

	deleted, err := s.DeleteShip(ship.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetShip(ship.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.GetComponent(component.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.GetJob(job.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// The other ship's records survive.
	_, err = s.GetComponent(otherComponent.ID)
	assert.NoError(t, err)
	_, err = s.GetJob(otherJob.ID)
	assert.NoError(t, err)

	// Deleting again reports nothing removed.
	deleted, err = s.DeleteShip(ship.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteComponentCascadesOnlyItsJobs(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	engine := createComponent(t, s, ship.ID, "Main Engine")
	radar := createComponent(t, s, ship.ID, "Radar")

	engineJob := createJob(t, s, ship.ID, engine.ID)
	radarJob := createJob(t, s, ship.ID, radar.ID)

	deleted, err := s.DeleteComponent(engine.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetJob(engineJob.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// Jobs on the ship's other components are untouched.
	_, err = s.GetJob(radarJob.ID)
	assert.NoError(t, err)

	deleted, err = s.DeleteComponent(engine.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateComponentRequiresExistingShip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateComponent(models.Component{
		ShipID:       "s-missing",
		Name:         "Main Engine",
		SerialNumber: "SN-0001",
		Status:       models.ComponentStatusOperational,
	})
	assert.ErrorIs(t, err, errs.ErrMissingReference)
}

func TestCreateJobRequiresExistingReferences(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")

	_, err := s.CreateJob(models.Job{
		ShipID:      "s-missing",
		ComponentID: "c-missing",
		Type:        models.JobTypeRepair,
		Priority:    models.JobPriorityLow,
		Status:      models.JobStatusOpen,
	})
	assert.ErrorIs(t, err, errs.ErrMissingReference)

	_, err = s.CreateJob(models.Job{
		ShipID:      ship.ID,
		ComponentID: "c-missing",
		Type:        models.JobTypeRepair,
		Priority:    models.JobPriorityLow,
		Status:      models.JobStatusOpen,
	})
	assert.ErrorIs(t, err, errs.ErrMissingReference)
}

func TestCreateJobEmitsJobCreatedNotification(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	component := createComponent(t, s, ship.ID, "Main Engine")

	job := createJob(t, s, ship.ID, component.ID)

	notifications, err := s.ListNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	assert.Equal(t, models.NotificationJobCreated, notifications[0].Type)
	assert.Equal(t, "A new Inspection job has been created with High priority", notifications[0].Message)
	assert.Equal(t, job.ID, notifications[0].EntityID)
	assert.False(t, notifications[0].IsRead)
}

func TestUpdateJobNotificationKinds(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	component := createComponent(t, s, ship.ID, "Main Engine")
	job := createJob(t, s, ship.ID, component.ID)

	// Status Open -> In Progress is a plain update.
	inProgress := models.JobStatusInProgress
	_, err := s.UpdateJob(job.ID, JobPatch{Status: &inProgress})
	require.NoError(t, err)

	// Notes-only change is a plain update too.
	notes := "Bring spare filters"
	_, err = s.UpdateJob(job.ID, JobPatch{Notes: &notes})
	require.NoError(t, err)

	// Transition into Completed emits the completion notification.
	completed := models.JobStatusCompleted
	_, err = s.UpdateJob(job.ID, JobPatch{Status: &completed})
	require.NoError(t, err)

	// A later update of an already-completed job is a plain update again.
	_, err = s.UpdateJob(job.ID, JobPatch{Notes: &notes})
	require.NoError(t, err)

	notifications, err := s.ListNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 5)

	// Newest first.
	types := make([]string, 0, len(notifications))
	for _, n := range notifications {
		types = append(types, n.Type)
	}
	assert.Equal(t, []string{
		models.NotificationJobUpdated,
		models.NotificationJobCompleted,
		models.NotificationJobUpdated,
		models.NotificationJobUpdated,
		models.NotificationJobCreated,
	}, types)

	assert.Equal(t, "Job "+job.ID+" has been completed", notifications[1].Message)
	assert.Equal(t, "Job "+job.ID+" has been updated", notifications[0].Message)
}

func TestNotificationReadAndDelete(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	component := createComponent(t, s, ship.ID, "Main Engine")
	createJob(t, s, ship.ID, component.ID)
	createJob(t, s, ship.ID, component.ID)

	notifications, err := s.ListNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	unread, err := s.UnreadNotificationCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	marked, err := s.MarkNotificationRead(notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, marked.IsRead)

	unread, err = s.UnreadNotificationCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, s.MarkAllNotificationsRead())

	unread, err = s.UnreadNotificationCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	deleted, err := s.DeleteNotification(notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteNotification(notifications[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.MarkNotificationRead("n-missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteShipLeavesNotificationsAlone(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	component := createComponent(t, s, ship.ID, "Main Engine")
	createJob(t, s, ship.ID, component.ID)

	deleted, err := s.DeleteShip(ship.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Orphaned entity references are tolerated.
	notifications, err := s.ListNotifications()
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestSweepOverdueComponents(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	overdue, err := s.CreateComponent(models.Component{
		ShipID:              ship.ID,
		Name:                "Main Engine",
		SerialNumber:        "SN-0001",
		NextMaintenanceDate: &past,
		Status:              models.ComponentStatusOperational,
	})
	require.NoError(t, err)

	current, err := s.CreateComponent(models.Component{
		ShipID:              ship.ID,
		Name:                "Radar",
		SerialNumber:        "SN-0002",
		NextMaintenanceDate: &future,
		Status:              models.ComponentStatusOperational,
	})
	require.NoError(t, err)

	flagged, err := s.SweepOverdueComponents()
	require.NoError(t, err)
	assert.Equal(t, int64(1), flagged)

	got, err := s.GetComponent(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComponentStatusMaintenanceRequired, got.Status)

	got, err = s.GetComponent(current.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComponentStatusOperational, got.Status)

	// A second sweep finds nothing new.
	flagged, err = s.SweepOverdueComponents()
	require.NoError(t, err)
	assert.Equal(t, int64(0), flagged)
}

func TestJobFilter(t *testing.T) {
	s := newTestStore(t)

	ship := createShip(t, s, "Ever Given")
	other := createShip(t, s, "Maersk Alabama")
	engine := createComponent(t, s, ship.ID, "Main Engine")
	radar := createComponent(t, s, other.ID, "Radar")

	createJob(t, s, ship.ID, engine.ID)
	createJob(t, s, other.ID, radar.ID)

	jobs, err := s.ListJobs(JobFilter{ShipID: ship.ID})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, ship.ID, jobs[0].ShipID)

	jobs, err = s.ListJobs(JobFilter{ComponentID: radar.ID})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	jobs, err = s.ListJobs(JobFilter{Status: models.JobStatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, jobs)

	jobs, err = s.ListJobs(JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
