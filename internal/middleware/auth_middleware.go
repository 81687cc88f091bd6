package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/auth"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

// TokenParser validates access tokens.
type TokenParser interface {
	ParseToken(tokenStr string) (*auth.Claims, error)
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func JWTAuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the id set by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
