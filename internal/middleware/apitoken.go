package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIToken guards the parser service with a shared secret. Requests must send
// the token in the X-API-Token header. An empty configured token disables the
// check, matching how the service runs in local development.
func APIToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token != "" && c.GetHeader("X-API-Token") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
