package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// KitchenIDKey is the gin context key holding the active kitchen id.
const KitchenIDKey = "kitchen_id"

// KitchenClaims is what a valid kitchen token carries.
type KitchenClaims struct {
	KitchenID string
}

// TokenValidator is an interface for validating kitchen tokens
type TokenValidator interface {
	ValidateToken(token string) (*KitchenClaims, error)
}

// KitchenMiddleware resolves the kitchen a request acts on. Requests without
// an Authorization header use defaultKitchen; a header that is present must
// carry a valid bearer token.
func KitchenMiddleware(validator TokenValidator, defaultKitchen string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(KitchenIDKey, defaultKitchen)
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(KitchenIDKey, claims.KitchenID)
		c.Next()
	}
}

// KitchenID returns the kitchen set by KitchenMiddleware.
func KitchenID(c *gin.Context) string {
	return c.GetString(KitchenIDKey)
}
