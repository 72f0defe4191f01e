package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	userHandler := NewUserHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	newsletterHandler := NewNewsletterHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	notificationHandler := NewNotificationHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")

	// Registration is the only unauthenticated endpoint; everything else
	// requires a resolved principal.
	v1.POST("/users", userHandler.Register)

	authed := v1.Group("", identityMiddleware(services.User, log))
	{
		users := authed.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/me/subscriptions", userHandler.ListSubscriptions)
			users.GET("/me/bookmarks", userHandler.ListBookmarks)
			users.GET("/:id", userHandler.Get)
			users.POST("/:id/subscribe", userHandler.ToggleSubscription)
		}

		articles := authed.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/:id", articleHandler.Get)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/approve", articleHandler.Approve)
			articles.POST("/:id/reject", articleHandler.Reject)
			articles.POST("/:id/like", articleHandler.ToggleLike)
			articles.POST("/:id/dislike", articleHandler.ToggleDislike)
			articles.POST("/:id/bookmark", articleHandler.ToggleBookmark)
			articles.GET("/:id/comments", commentHandler.ListForArticle)
			articles.POST("/:id/comments", commentHandler.CreateForArticle)
		}

		newsletters := authed.Group("/newsletters")
		{
			newsletters.GET("", newsletterHandler.List)
			newsletters.POST("", newsletterHandler.Create)
			newsletters.GET("/:id", newsletterHandler.Get)
			newsletters.PUT("/:id", newsletterHandler.Update)
			newsletters.DELETE("/:id", newsletterHandler.Delete)
			newsletters.POST("/:id/approve", newsletterHandler.Approve)
			newsletters.POST("/:id/reject", newsletterHandler.Reject)
			newsletters.POST("/:id/like", newsletterHandler.ToggleLike)
			newsletters.POST("/:id/dislike", newsletterHandler.ToggleDislike)
			newsletters.POST("/:id/bookmark", newsletterHandler.ToggleBookmark)
			newsletters.GET("/:id/comments", commentHandler.ListForNewsletter)
			newsletters.POST("/:id/comments", commentHandler.CreateForNewsletter)
		}

		comments := authed.Group("/comments")
		{
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "newsroom-platform-api",
	})
}

// metricsHandler returns entity counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		users, _ := services.User.Count(ctx)
		articles, _ := services.Article.Count(ctx)
		newsletters, _ := services.Newsletter.Count(ctx)
		comments, _ := services.Comment.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"users":       users,
				"articles":    articles,
				"newsletters": newsletters,
				"comments":    comments,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
