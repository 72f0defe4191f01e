package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
)

// UserHandler handles user and subscription endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string      `json:"username"`
		Email    string      `json:"email"`
		Role     models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.services.User.Register(c.Request.Context(), req.Username, req.Email, req.Role)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Get handles GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.services.User.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List handles GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.services.User.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ToggleSubscription handles POST /v1/users/:id/subscribe
func (h *UserHandler) ToggleSubscription(c *gin.Context) {
	var req struct {
		Kind models.SubscriptionKind `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	subscribed, err := h.services.User.ToggleSubscription(c.Request.Context(), principalFrom(c), c.Param("id"), req.Kind)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

// ListBookmarks handles GET /v1/users/me/bookmarks
func (h *UserHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.services.Reaction.Bookmarks(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "count": len(bookmarks)})
}

// ListSubscriptions handles GET /v1/users/me/subscriptions
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.services.User.Subscriptions(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs, "count": len(subs)})
}
