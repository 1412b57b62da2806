package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/fleetdeck-dev/fleetdeck/internal/errs"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

func (h *NotificationHandler) List(ctx *gin.Context) {
	notifications, err := h.store.ListNotifications()

	if err != nil {
		log.Printf("Failed to list notifications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	unread, err := h.store.UnreadNotificationCount()

	if err != nil {
		log.Printf("Failed to count unread notifications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(ctx *gin.Context) {
	notification, err := h.store.MarkNotificationRead(ctx.Param("notification_id"))

	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		log.Printf("Failed to mark notification as read: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(ctx *gin.Context) {
	if err := h.store.MarkAllNotificationsRead(); err != nil {
		log.Printf("Failed to mark all notifications as read: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) Delete(ctx *gin.Context) {
	deleted, err := h.store.DeleteNotification(ctx.Param("notification_id"))

	if err != nil {
		log.Printf("Failed to delete notification: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
