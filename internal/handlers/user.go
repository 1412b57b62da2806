package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/permissions"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/fleetdeck-dev/fleetdeck/internal/types"
	"github.com/gin-gonic/gin"
)

// Users are a fixed seed set, so this surface is read-only.
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.store.ListUsers()

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			RoleLabel: permissions.FormatRole(user.Role),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	user, err := h.store.GetUser(ctx.Param("user_id"))

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		RoleLabel: permissions.FormatRole(user.Role),
	})
}
