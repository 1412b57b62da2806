package middleware

import (
	"net/http"

	"github.com/fleetdeck-dev/fleetdeck/internal/permissions"
	"github.com/fleetdeck-dev/fleetdeck/internal/types"
	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on the role/feature/permission matrix.
// Must run after AuthMiddleware.
func RequirePermission(feature permissions.Feature, permission permissions.Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if !permissions.HasPermission(user.Role, feature, permission) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		ctx.Next()
	}
}
