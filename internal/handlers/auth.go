package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/fleetdeck-dev/fleetdeck/internal/auth"
	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"github.com/fleetdeck-dev/fleetdeck/internal/permissions"
	"github.com/fleetdeck-dev/fleetdeck/internal/session"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/fleetdeck-dev/fleetdeck/internal/types"
	"github.com/fleetdeck-dev/fleetdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	store    *store.Store
	sessions *session.Manager
}

func NewAuthHandler(st *store.Store, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.authenticate(req.Email, req.Password)

	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Failed to authenticate user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.sessions.Create(*user); err != nil {
		log.Printf("Failed to create session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setTokenCookie(ctx, token, int(session.TTL.Seconds()))

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			RoleLabel: permissions.FormatRole(user.Role),
		},
	})
}

// Logout clears the session regardless of its current state.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := h.sessions.Clear(); err != nil {
		log.Printf("Failed to clear session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setTokenCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:        currentUser.ID,
			Email:     currentUser.Email,
			Role:      currentUser.Role,
			RoleLabel: permissions.FormatRole(currentUser.Role),
		},
		"features": permissions.FeaturesFor(currentUser.Role),
	})
}

// authenticate resolves the email to a user and checks the password. The email
// lookup is an exact, case-sensitive match. Unknown email and wrong password
// are indistinguishable to the caller.
func (h *AuthHandler) authenticate(email, password string) (*models.User, error) {
	user, err := h.store.GetUserByEmail(email)

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrUnauthorized
	}

	return user, nil
}

func setTokenCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
