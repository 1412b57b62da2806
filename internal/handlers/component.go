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

type ComponentHandler struct {
	store *store.Store
	hub   *Hub
}

func NewComponentHandler(st *store.Store, hub *Hub) *ComponentHandler {
	return &ComponentHandler{store: st, hub: hub}
}

type CreateComponentRequest struct {
	ShipID              string     `json:"shipId" binding:"required"`
	Name                string     `json:"name" binding:"required"`
	SerialNumber        string     `json:"serialNumber" binding:"required"`
	InstallDate         time.Time  `json:"installDate" binding:"required"`
	LastMaintenanceDate time.Time  `json:"lastMaintenanceDate" binding:"required"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate"`
	Status              string     `json:"status" binding:"required"`
}

type UpdateComponentRequest struct {
	Name                *string    `json:"name"`
	SerialNumber        *string    `json:"serialNumber"`
	InstallDate         *time.Time `json:"installDate"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate"`
	Status              *string    `json:"status"`
}

func (h *ComponentHandler) List(ctx *gin.Context) {
	components, err := h.store.ListComponents()

	if err != nil {
		log.Printf("Failed to list components: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve components"})
		return
	}

	ctx.JSON(http.StatusOK, components)
}

func (h *ComponentHandler) Get(ctx *gin.Context) {
	component, err := h.store.GetComponent(ctx.Param("component_id"))

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Component not found"})
			return
		}
		log.Printf("Failed to fetch component: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve component"})
		return
	}

	ctx.JSON(http.StatusOK, component)
}

func (h *ComponentHandler) Create(ctx *gin.Context) {
	var req CreateComponentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !models.ValidComponentStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component status"})
		return
	}

	component, err := h.store.CreateComponent(models.Component{
		ShipID:              req.ShipID,
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		InstallDate:         req.InstallDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Status:              req.Status,
	})

	if err != nil {
		if errors.Is(err, errs.ErrMissingReference) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Referenced ship does not exist"})
			return
		}
		log.Printf("Failed to create component: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create component"})
		return
	}

	h.hub.BroadcastRefresh("components")

	ctx.JSON(http.StatusCreated, component)
}

func (h *ComponentHandler) Update(ctx *gin.Context) {
	var req UpdateComponentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Status != nil && !models.ValidComponentStatus(*req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component status"})
		return
	}

	component, err := h.store.UpdateComponent(ctx.Param("component_id"), store.ComponentPatch{
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		InstallDate:         req.InstallDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Status:              req.Status,
	})

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Component not found"})
			return
		}
		log.Printf("Failed to update component: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update component"})
		return
	}

	h.hub.BroadcastRefresh("components")

	ctx.JSON(http.StatusOK, component)
}

func (h *ComponentHandler) Delete(ctx *gin.Context) {
	deleted, err := h.store.DeleteComponent(ctx.Param("component_id"))

	if err != nil {
		log.Printf("Failed to delete component: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete component"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Component not found"})
		return
	}

	h.hub.BroadcastRefresh("components")

	ctx.Status(http.StatusNoContent)
}
