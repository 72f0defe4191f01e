package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

type commentRequest struct {
	Body string `json:"body"`
}

// CreateForArticle handles POST /v1/articles/:id/comments
func (h *CommentHandler) CreateForArticle(c *gin.Context) {
	h.create(c, models.ContentRef{Type: models.ContentArticle, ID: c.Param("id")})
}

// CreateForNewsletter handles POST /v1/newsletters/:id/comments
func (h *CommentHandler) CreateForNewsletter(c *gin.Context) {
	h.create(c, models.ContentRef{Type: models.ContentNewsletter, ID: c.Param("id")})
}

func (h *CommentHandler) create(c *gin.Context, ref models.ContentRef) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), principalFrom(c), ref, req.Body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListForArticle handles GET /v1/articles/:id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	h.list(c, models.ContentRef{Type: models.ContentArticle, ID: c.Param("id")})
}

// ListForNewsletter handles GET /v1/newsletters/:id/comments
func (h *CommentHandler) ListForNewsletter(c *gin.Context) {
	h.list(c, models.ContentRef{Type: models.ContentNewsletter, ID: c.Param("id")})
}

func (h *CommentHandler) list(c *gin.Context, ref models.ContentRef) {
	comments, err := h.services.Comment.ListForContent(c.Request.Context(), ref)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// Update handles PUT /v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), principalFrom(c), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
