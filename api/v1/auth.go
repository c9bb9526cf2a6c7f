package v1

import (
	"errors"
	"net/http"

	"github.com/bedrock/sor-api/dto"
	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/services"
	"github.com/gin-gonic/gin"
)

// obtainToken authenticates a username/password pair and returns the user
// block with an access/refresh token pair.
func obtainToken(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body."})
			return
		}

		fieldErrs := mapping.FieldErrors{}
		if req.Username == "" {
			fieldErrs.Add("username", "This field is required.")
		}
		if req.Password == "" {
			fieldErrs.Add("password", "This field is required.")
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}

		user, err := auth.ObtainPair(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"detail": "No active account found with the given credentials",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
			return
		}

		c.JSON(http.StatusOK, dto.TokenPairResponse{User: *user})
	}
}

// refreshToken exchanges a refresh token for a new access token.
func refreshToken(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body."})
			return
		}
		if req.Refresh == "" {
			fieldErrs := mapping.FieldErrors{}
			fieldErrs.Add("refresh", "This field is required.")
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}

		access, err := auth.Refresh(req.Refresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access": access})
	}
}
