package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
)

// NotificationHandler handles notification feed endpoints
type NotificationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(services *service.Services, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		services: services,
		log:      log.With().Str("handler", "notification").Logger(),
	}
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.services.Notification.List(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// UnreadCount handles GET /v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.services.Notification.UnreadCount(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.services.Notification.MarkRead(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.services.Notification.MarkAllRead(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": updated})
}
