package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// authenticator is the subset of AuthUsecase the middleware needs.
type authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}

// Auth resolves an opaque bearer token from the Authorization header and sets
// "userID" in the gin context. Both "Token <key>" and "Bearer <key>" schemes
// are accepted. The token is a lookup key, not a decoded payload.
func Auth(auth authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := tokenFromHeader(c.GetHeader("Authorization"))
		if rawToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}

func tokenFromHeader(header string) string {
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimPrefix(header, scheme)
		}
	}
	return ""
}
