package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/service"
	"github.com/rs/zerolog"
)

const principalKey = "principal"

// identityMiddleware resolves the authenticated principal from the
// X-User-ID header set by the upstream identity provider. The session
// subsystem itself lives outside this service; we only need a stable
// user identifier and its role.
func identityMiddleware(users service.UserService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if errors.Is(err, service.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to resolve principal")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account deactivated"})
			return
		}

		c.Set(principalKey, &auth.Principal{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// principalFrom retrieves the principal placed by identityMiddleware.
// Returns nil on unauthenticated routes; the auth predicates deny nil.
func principalFrom(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// respondError maps service errors onto the HTTP error taxonomy.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": vErr.Fields})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
