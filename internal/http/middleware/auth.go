package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"task-manager/internal/service"
)

const userIDKey = "user_id"

// RequireAuth validates the Bearer token and stores the caller's user id
// in the request context.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated caller's id, 0 when unauthenticated.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(userIDKey)
	v, _ := id.(int64)
	return v
}
