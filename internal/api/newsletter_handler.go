package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services: services,
		log:      log.With().Str("handler", "newsletter").Logger(),
	}
}

// List handles GET /v1/newsletters
func (h *NewsletterHandler) List(c *gin.Context) {
	newsletters, err := h.services.Newsletter.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	summaries := lo.Map(newsletters, func(n *models.Newsletter, _ int) contentSummary {
		return contentSummary{
			ID:        n.ID,
			Title:     n.Title,
			AuthorID:  n.AuthorID,
			Status:    n.Status,
			Sentiment: n.Sentiment,
			CreatedAt: n.CreatedAt,
		}
	})
	c.JSON(http.StatusOK, gin.H{"newsletters": summaries, "count": len(summaries)})
}

// Get handles GET /v1/newsletters/:id
func (h *NewsletterHandler) Get(c *gin.Context) {
	detail, err := h.services.Newsletter.Get(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create handles POST /v1/newsletters
func (h *NewsletterHandler) Create(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	newsletter, err := h.services.Newsletter.Create(c.Request.Context(), principalFrom(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, newsletter)
}

// Update handles PUT /v1/newsletters/:id
func (h *NewsletterHandler) Update(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	newsletter, err := h.services.Newsletter.Update(c.Request.Context(), principalFrom(c), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// Delete handles DELETE /v1/newsletters/:id
func (h *NewsletterHandler) Delete(c *gin.Context) {
	if err := h.services.Newsletter.Delete(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Approve handles POST /v1/newsletters/:id/approve
func (h *NewsletterHandler) Approve(c *gin.Context) {
	newsletter, err := h.services.Newsletter.Approve(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// Reject handles POST /v1/newsletters/:id/reject
func (h *NewsletterHandler) Reject(c *gin.Context) {
	newsletter, err := h.services.Newsletter.Reject(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// ToggleLike handles POST /v1/newsletters/:id/like
func (h *NewsletterHandler) ToggleLike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionLike)
}

// ToggleDislike handles POST /v1/newsletters/:id/dislike
func (h *NewsletterHandler) ToggleDislike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionDislike)
}

func (h *NewsletterHandler) toggleReaction(c *gin.Context, kind models.ReactionKind) {
	ref := models.ContentRef{Type: models.ContentNewsletter, ID: c.Param("id")}
	state, err := h.services.Reaction.Toggle(c.Request.Context(), principalFrom(c), ref, kind)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleBookmark handles POST /v1/newsletters/:id/bookmark
func (h *NewsletterHandler) ToggleBookmark(c *gin.Context) {
	ref := models.ContentRef{Type: models.ContentNewsletter, ID: c.Param("id")}
	bookmarked, err := h.services.Reaction.ToggleBookmark(c.Request.Context(), principalFrom(c), ref)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}
