package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"livingnest/internal/token" // Session token parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextEmailKey is where Auth stores the verified caller identity
const ContextEmailKey = "email"

// Auth validates the bearer token and attaches the caller's email to the
// request context. Missing or invalid tokens short-circuit with 401 before
// any store access happens.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := token.Parse(tokenStr, secret)          // Parse and verify the token
		if err != nil {
			// Expired, malformed or badly signed token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		c.Set(ContextEmailKey, claims.Email) // Store verified identity in context
		c.Next()                             // Proceed to the next handler
	}
}
