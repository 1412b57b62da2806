package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/gin-gonic/gin"
)

type ShipHandler struct {
	store *store.Store
	hub   *Hub
}

func NewShipHandler(st *store.Store, hub *Hub) *ShipHandler {
	return &ShipHandler{store: st, hub: hub}
}

type CreateShipRequest struct {
	Name   string `json:"name" binding:"required"`
	IMO    string `json:"imo" binding:"required,len=7,numeric"`
	Flag   string `json:"flag" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UpdateShipRequest struct {
	Name   *string `json:"name"`
	IMO    *string `json:"imo" binding:"omitempty,len=7,numeric"`
	Flag   *string `json:"flag"`
	Status *string `json:"status"`
}

func (h *ShipHandler) List(ctx *gin.Context) {
	ships, err := h.store.ListShips()

	if err != nil {
		log.Printf("Failed to list ships: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ships"})
		return
	}

	ctx.JSON(http.StatusOK, ships)
}

func (h *ShipHandler) Get(ctx *gin.Context) {
	ship, err := h.store.GetShip(ctx.Param("ship_id"))

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
			return
		}
		log.Printf("Failed to fetch ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ship"})
		return
	}

	ctx.JSON(http.StatusOK, ship)
}

func (h *ShipHandler) Components(ctx *gin.Context) {
	shipID := ctx.Param("ship_id")

	if _, err := h.store.GetShip(shipID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
			return
		}
		log.Printf("Failed to fetch ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ship"})
		return
	}

	components, err := h.store.ComponentsByShip(shipID)

	if err != nil {
		log.Printf("Failed to list components for ship %s: %v", shipID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve components"})
		return
	}

	ctx.JSON(http.StatusOK, components)
}

func (h *ShipHandler) Jobs(ctx *gin.Context) {
	shipID := ctx.Param("ship_id")

	if _, err := h.store.GetShip(shipID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
			return
		}
		log.Printf("Failed to fetch ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ship"})
		return
	}

	jobs, err := h.store.ListJobs(store.JobFilter{ShipID: shipID})

	if err != nil {
		log.Printf("Failed to list jobs for ship %s: %v", shipID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

func (h *ShipHandler) Create(ctx *gin.Context) {
	var req CreateShipRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !models.ValidShipStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ship status"})
		return
	}

	ship, err := h.store.CreateShip(models.Ship{
		Name:   req.Name,
		IMO:    req.IMO,
		Flag:   req.Flag,
		Status: req.Status,
	})

	if err != nil {
		log.Printf("Failed to create ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ship"})
		return
	}

	h.hub.BroadcastRefresh("ships")

	ctx.JSON(http.StatusCreated, ship)
}

func (h *ShipHandler) Update(ctx *gin.Context) {
	var req UpdateShipRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Status != nil && !models.ValidShipStatus(*req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ship status"})
		return
	}

	ship, err := h.store.UpdateShip(ctx.Param("ship_id"), store.ShipPatch{
		Name:   req.Name,
		IMO:    req.IMO,
		Flag:   req.Flag,
		Status: req.Status,
	})

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
			return
		}
		log.Printf("Failed to update ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ship"})
		return
	}

	h.hub.BroadcastRefresh("ships")

	ctx.JSON(http.StatusOK, ship)
}

func (h *ShipHandler) Delete(ctx *gin.Context) {
	deleted, err := h.store.DeleteShip(ctx.Param("ship_id"))

	if err != nil {
		log.Printf("Failed to delete ship: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ship"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
		return
	}

	h.hub.BroadcastRefresh("ships")

	ctx.Status(http.StatusNoContent)
}
