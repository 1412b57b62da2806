package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	store *store.Store
}

func NewCalendarHandler(st *store.Store) *CalendarHandler {
	return &CalendarHandler{store: st}
}

type CalendarResponse struct {
	Month     string                  `json:"month"`
	JobsByDay map[string][]models.Job `json:"jobsByDay"`
}

// Get returns jobs scheduled in the requested month (?month=2006-01),
// defaulting to the current month, keyed by day.
func (h *CalendarHandler) Get(ctx *gin.Context) {
	month := ctx.Query("month")

	if month == "" {
		month = time.Now().Format("2006-01")
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}
	end := start.AddDate(0, 1, 0)

	jobs, err := h.store.ListJobs(store.JobFilter{})
	if err != nil {
		log.Printf("Failed to list jobs for calendar: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve calendar data"})
		return
	}

	response := CalendarResponse{
		Month:     month,
		JobsByDay: make(map[string][]models.Job),
	}

	for _, job := range jobs {
		if job.ScheduledDate.Before(start) || !job.ScheduledDate.Before(end) {
			continue
		}
		day := job.ScheduledDate.Format("2006-01-02")
		response.JobsByDay[day] = append(response.JobsByDay[day], job)
	}

	ctx.JSON(http.StatusOK, response)
}
