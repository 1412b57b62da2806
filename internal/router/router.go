package router

import (
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/handlers"
	"github.com/fleetdeck-dev/fleetdeck/internal/middleware"
	"github.com/fleetdeck-dev/fleetdeck/internal/permissions"
	"github.com/fleetdeck-dev/fleetdeck/internal/session"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/fleetdeck-dev/fleetdeck/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(st *store.Store, sessions *session.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	hub := handlers.NewHub()

	authHandler := handlers.NewAuthHandler(st, sessions)
	shipHandler := handlers.NewShipHandler(st, hub)
	componentHandler := handlers.NewComponentHandler(st, hub)
	jobHandler := handlers.NewJobHandler(st, hub)
	notificationHandler := handlers.NewNotificationHandler(st)
	userHandler := handlers.NewUserHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)
	calendarHandler := handlers.NewCalendarHandler(st)

	requireAuth := middleware.AuthMiddleware(st, sessions)
	can := middleware.RequirePermission

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		protected := api.Group("", requireAuth)
		{
			protected.GET("/ws", hub.Serve)

			ships := protected.Group("/ships")
			{
				ships.GET("", can(permissions.FeatureShips, permissions.PermissionView), shipHandler.List)
				ships.POST("", can(permissions.FeatureShips, permissions.PermissionCreate), shipHandler.Create)
				ships.GET("/:ship_id", can(permissions.FeatureShips, permissions.PermissionView), shipHandler.Get)
				ships.PATCH("/:ship_id", can(permissions.FeatureShips, permissions.PermissionUpdate), shipHandler.Update)
				ships.DELETE("/:ship_id", can(permissions.FeatureShips, permissions.PermissionDelete), shipHandler.Delete)

				ships.GET("/:ship_id/components", can(permissions.FeatureComponents, permissions.PermissionView), shipHandler.Components)
				ships.GET("/:ship_id/jobs", can(permissions.FeatureJobs, permissions.PermissionView), shipHandler.Jobs)
			}

			components := protected.Group("/components")
			{
				components.GET("", can(permissions.FeatureComponents, permissions.PermissionView), componentHandler.List)
				components.POST("", can(permissions.FeatureComponents, permissions.PermissionCreate), componentHandler.Create)
				components.GET("/:component_id", can(permissions.FeatureComponents, permissions.PermissionView), componentHandler.Get)
				components.PATCH("/:component_id", can(permissions.FeatureComponents, permissions.PermissionUpdate), componentHandler.Update)
				components.DELETE("/:component_id", can(permissions.FeatureComponents, permissions.PermissionDelete), componentHandler.Delete)
			}

			jobs := protected.Group("/jobs")
			{
				jobs.GET("", can(permissions.FeatureJobs, permissions.PermissionView), jobHandler.List)
				jobs.POST("", can(permissions.FeatureJobs, permissions.PermissionCreate), jobHandler.Create)
				jobs.GET("/:job_id", can(permissions.FeatureJobs, permissions.PermissionView), jobHandler.Get)
				jobs.PATCH("/:job_id", can(permissions.FeatureJobs, permissions.PermissionUpdate), jobHandler.Update)
				jobs.DELETE("/:job_id", can(permissions.FeatureJobs, permissions.PermissionDelete), jobHandler.Delete)
			}

			users := protected.Group("/users")
			{
				users.GET("", can(permissions.FeatureUsers, permissions.PermissionView), userHandler.List)
				users.GET("/:user_id", can(permissions.FeatureUsers, permissions.PermissionView), userHandler.Get)
			}

			// Notifications have no feature gate; every authenticated role
			// sees its own dropdown.
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.List)
				notifications.PATCH("/:notification_id/read", notificationHandler.MarkRead)
				notifications.POST("/read-all", notificationHandler.MarkAllRead)
				notifications.DELETE("/:notification_id", notificationHandler.Delete)
			}

			protected.GET("/dashboard", can(permissions.FeatureDashboard, permissions.PermissionView), dashboardHandler.Get)
			protected.GET("/calendar", can(permissions.FeatureCalendar, permissions.PermissionView), calendarHandler.Get)
		}
	}

	return r
}
