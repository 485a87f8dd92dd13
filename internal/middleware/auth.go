package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"aidraft-addon/config"
	"aidraft-addon/internal/models"
	"aidraft-addon/internal/utils"
)

// ClaimsKey is the gin context key holding the validated *utils.AddonClaims.
const ClaimsKey = "addonClaims"

// AuthMiddleware only lets through requests signed by the add-on host: a
// Google ID token for ADDON_AUDIENCE in the Authorization header. It is a
// no-op when no audience is configured.
func AuthMiddleware(cfg *config.Config, keyFunc jwt.Keyfunc, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AddonAudience == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing bearer token",
			})
			return
		}

		claims, err := utils.ValidateAddonToken(strings.TrimSpace(tokenString), cfg.AddonAudience, cfg.AddonServiceAccount, keyFunc)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("rejected add-on request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid token",
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
