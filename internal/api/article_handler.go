package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// contentSummary is the list-view shape for articles and newsletters.
type contentSummary struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	AuthorID  string               `json:"author_id"`
	Status    models.ContentStatus `json:"status"`
	Sentiment models.Sentiment     `json:"sentiment"`
	CreatedAt time.Time            `json:"created_at"`
}

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	summaries := lo.Map(articles, func(a *models.Article, _ int) contentSummary {
		return contentSummary{
			ID:        a.ID,
			Title:     a.Title,
			AuthorID:  a.AuthorID,
			Status:    a.Status,
			Sentiment: a.Sentiment,
			CreatedAt: a.CreatedAt,
		}
	})
	c.JSON(http.StatusOK, gin.H{"articles": summaries, "count": len(summaries)})
}

// Get handles GET /v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	detail, err := h.services.Article.Get(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create handles POST /v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), principalFrom(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var in service.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), principalFrom(c), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Approve handles POST /v1/articles/:id/approve
func (h *ArticleHandler) Approve(c *gin.Context) {
	article, err := h.services.Article.Approve(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Reject handles POST /v1/articles/:id/reject
func (h *ArticleHandler) Reject(c *gin.Context) {
	article, err := h.services.Article.Reject(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ToggleLike handles POST /v1/articles/:id/like
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionLike)
}

// ToggleDislike handles POST /v1/articles/:id/dislike
func (h *ArticleHandler) ToggleDislike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionDislike)
}

func (h *ArticleHandler) toggleReaction(c *gin.Context, kind models.ReactionKind) {
	ref := models.ContentRef{Type: models.ContentArticle, ID: c.Param("id")}
	state, err := h.services.Reaction.Toggle(c.Request.Context(), principalFrom(c), ref, kind)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleBookmark handles POST /v1/articles/:id/bookmark
func (h *ArticleHandler) ToggleBookmark(c *gin.Context) {
	ref := models.ContentRef{Type: models.ContentArticle, ID: c.Param("id")}
	bookmarked, err := h.services.Reaction.ToggleBookmark(c.Request.Context(), principalFrom(c), ref)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}
