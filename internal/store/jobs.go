package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"gorm.io/gorm"
)

// JobFilter narrows ListJobs. Zero-valued fields are ignored.
type JobFilter struct {
	ShipID      string
	ComponentID string
	Status      string
	Priority    string
	EngineerID  string
}

func (s *Store) ListJobs(filter JobFilter) ([]models.Job, error) {
	q := s.db.Order("created_at")

	if filter.ShipID != "" {
		q = q.Where("ship_id = ?", filter.ShipID)
	}
	if filter.ComponentID != "" {
		q = q.Where("component_id = ?", filter.ComponentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.EngineerID != "" {
		q = q.Where("assigned_engineer_id = ?", filter.EngineerID)
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Store) GetJob(id string) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// CreateJob persists a new job and emits a JobCreated notification. Ship and
// component references must both exist.
func (s *Store) CreateJob(job models.Job) (models.Job, error) {
	if _, err := s.GetShip(job.ShipID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return models.Job{}, errs.ErrMissingReference
		}
		return models.Job{}, err
	}
	if _, err := s.GetComponent(job.ComponentID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return models.Job{}, errs.ErrMissingReference
		}
		return models.Job{}, err
	}

	id, err := newID(jobIDPrefix)
	if err != nil {
		return models.Job{}, err
	}

	job.ID = id
	job.CreatedAt = s.now()
	job.UpdatedAt = job.CreatedAt

	if err := s.db.Create(&job).Error; err != nil {
		return models.Job{}, err
	}

	message := fmt.Sprintf("A new %s job has been created with %s priority", job.Type, job.Priority)
	if err := s.emitNotification(models.NotificationJobCreated, message, job.ID); err != nil {
		return models.Job{}, err
	}

	return job, nil
}

type JobPatch struct {
	Type               *string
	Priority           *string
	Status             *string
	AssignedEngineerID *string
	ScheduledDate      *time.Time
	CompletionDate     *time.Time
	Notes              *string
}

// UpdateJob merges the patch over the job and emits exactly one notification:
// JobCompleted when the status transitions into Completed, JobUpdated for any
// other change.
func (s *Store) UpdateJob(id string, patch JobPatch) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	previousStatus := job.Status

	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.Priority != nil {
		job.Priority = *patch.Priority
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.AssignedEngineerID != nil {
		job.AssignedEngineerID = *patch.AssignedEngineerID
	}
	if patch.ScheduledDate != nil {
		job.ScheduledDate = *patch.ScheduledDate
	}
	if patch.CompletionDate != nil {
		job.CompletionDate = patch.CompletionDate
	}
	if patch.Notes != nil {
		job.Notes = *patch.Notes
	}
	job.UpdatedAt = s.now()

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}

	notificationType := models.NotificationJobUpdated
	message := fmt.Sprintf("Job %s has been updated", id)

	if job.Status == models.JobStatusCompleted && previousStatus != models.JobStatusCompleted {
		notificationType = models.NotificationJobCompleted
		message = fmt.Sprintf("Job %s has been completed", id)
	}

	if err := s.emitNotification(notificationType, message, id); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *Store) DeleteJob(id string) (bool, error) {
	res := s.db.Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
