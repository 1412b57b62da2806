package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

type KPIResponse struct {
	TotalShips           int            `json:"totalShips"`
	OverdueMaintenance   int            `json:"overdueMaintenance"`
	JobsInProgress       int            `json:"jobsInProgress"`
	JobsCompleted        int            `json:"jobsCompleted"`
	ShipsByStatus        map[string]int `json:"shipsByStatus"`
	JobsByPriority       map[string]int `json:"jobsByPriority"`
	JobsByStatus         map[string]int `json:"jobsByStatus"`
	JobsCompletedByMonth map[string]int `json:"jobsCompletedByMonth"`
}

func (h *DashboardHandler) Get(ctx *gin.Context) {
	ships, err := h.store.ListShips()
	if err != nil {
		log.Printf("Failed to list ships for dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard data"})
		return
	}

	components, err := h.store.ListComponents()
	if err != nil {
		log.Printf("Failed to list components for dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard data"})
		return
	}

	jobs, err := h.store.ListJobs(store.JobFilter{})
	if err != nil {
		log.Printf("Failed to list jobs for dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard data"})
		return
	}

	now := time.Now()

	kpi := KPIResponse{
		TotalShips:           len(ships),
		ShipsByStatus:        make(map[string]int),
		JobsByPriority:       make(map[string]int),
		JobsByStatus:         make(map[string]int),
		JobsCompletedByMonth: make(map[string]int),
	}

	for _, ship := range ships {
		kpi.ShipsByStatus[ship.Status]++
	}

	for _, component := range components {
		if component.NextMaintenanceDate != nil && component.NextMaintenanceDate.Before(now) {
			kpi.OverdueMaintenance++
		}
	}

	for _, job := range jobs {
		kpi.JobsByPriority[job.Priority]++
		kpi.JobsByStatus[job.Status]++

		switch job.Status {
		case models.JobStatusInProgress:
			kpi.JobsInProgress++
		case models.JobStatusCompleted:
			kpi.JobsCompleted++

			completedAt := job.UpdatedAt
			if job.CompletionDate != nil {
				completedAt = *job.CompletionDate
			}
			kpi.JobsCompletedByMonth[completedAt.Format("2006-01")]++
		}
	}

	ctx.JSON(http.StatusOK, kpi)
}
