package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	store *store.Store
	hub   *Hub
}

func NewJobHandler(st *store.Store, hub *Hub) *JobHandler {
	return &JobHandler{store: st, hub: hub}
}

type CreateJobRequest struct {
	ShipID             string    `json:"shipId" binding:"required"`
	ComponentID        string    `json:"componentId" binding:"required"`
	Type               string    `json:"type" binding:"required"`
	Priority           string    `json:"priority" binding:"required"`
	Status             string    `json:"status" binding:"required"`
	AssignedEngineerID string    `json:"assignedEngineerId" binding:"required"`
	ScheduledDate      time.Time `json:"scheduledDate" binding:"required"`
	Notes              string    `json:"notes"`
}

type UpdateJobRequest struct {
	Type               *string    `json:"type"`
	Priority           *string    `json:"priority"`
	Status             *string    `json:"status"`
	AssignedEngineerID *string    `json:"assignedEngineerId"`
	ScheduledDate      *time.Time `json:"scheduledDate"`
	CompletionDate     *time.Time `json:"completionDate"`
	Notes              *string    `json:"notes"`
}

func validateJobFields(jobType, priority, status *string) string {
	if jobType != nil && !models.ValidJobType(*jobType) {
		return "Invalid job type"
	}
	if priority != nil && !models.ValidJobPriority(*priority) {
		return "Invalid job priority"
	}
	if status != nil && !models.ValidJobStatus(*status) {
		return "Invalid job status"
	}
	return ""
}

func (h *JobHandler) List(ctx *gin.Context) {
	filter := store.JobFilter{
		ShipID:      ctx.Query("shipId"),
		ComponentID: ctx.Query("componentId"),
		Status:      ctx.Query("status"),
		Priority:    ctx.Query("priority"),
		EngineerID:  ctx.Query("assignedEngineerId"),
	}

	jobs, err := h.store.ListJobs(filter)

	if err != nil {
		log.Printf("Failed to list jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(ctx *gin.Context) {
	job, err := h.store.GetJob(ctx.Param("job_id"))

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("Failed to fetch job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		return
	}

	ctx.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(ctx *gin.Context) {
	var req CreateJobRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if msg := validateJobFields(&req.Type, &req.Priority, &req.Status); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	job, err := h.store.CreateJob(models.Job{
		ShipID:             req.ShipID,
		ComponentID:        req.ComponentID,
		Type:               req.Type,
		Priority:           req.Priority,
		Status:             req.Status,
		AssignedEngineerID: req.AssignedEngineerID,
		ScheduledDate:      req.ScheduledDate,
		Notes:              req.Notes,
	})

	if err != nil {
		if errors.Is(err, errs.ErrMissingReference) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Referenced ship or component does not exist"})
			return
		}
		log.Printf("Failed to create job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	h.hub.BroadcastRefresh("jobs")

	ctx.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(ctx *gin.Context) {
	var req UpdateJobRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if msg := validateJobFields(req.Type, req.Priority, req.Status); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	job, err := h.store.UpdateJob(ctx.Param("job_id"), store.JobPatch{
		Type:               req.Type,
		Priority:           req.Priority,
		Status:             req.Status,
		AssignedEngineerID: req.AssignedEngineerID,
		ScheduledDate:      req.ScheduledDate,
		CompletionDate:     req.CompletionDate,
		Notes:              req.Notes,
	})

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("Failed to update job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	h.hub.BroadcastRefresh("jobs")

	ctx.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(ctx *gin.Context) {
	deleted, err := h.store.DeleteJob(ctx.Param("job_id"))

	if err != nil {
		log.Printf("Failed to delete job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	h.hub.BroadcastRefresh("jobs")

	ctx.Status(http.StatusNoContent)
}
