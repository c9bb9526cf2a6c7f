package middleware

import (
	"net/http"
	"strings"

	"github.com/bedrock/sor-api/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid Bearer access token. On success the
// authenticated username is stored in the request context; writes are gated
// on authentication alone, with no role distinctions.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authorization header must be a Bearer token.",
			})
			return
		}
		claims, err := auth.ValidateAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Given token not valid for any token type",
			})
			return
		}
		c.Set("username", claims.Username)
		c.Next()
	}
}
