package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/logging"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/services"
)

// AdminContextKey is the gin context key under which the gate stores the
// resolved admin account
const AdminContextKey = "admin"

// AdminAuth is the authorization gate guarding every mutating endpoint. It
// extracts the bearer token, verifies it and re-resolves the subject to a
// stored account; any failed step aborts with the same 401 body. The cause
// (missing header, bad signature, expiry, deleted account) is logged but
// never surfaced to the caller.
func AdminAuth(auth *services.AuthService) gin.HandlerFunc {
	logger := logging.NewLogger("authgate")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Debug().Str("request_id", GetRequestID(c)).Msg("missing authorization header")
			unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			logger.Debug().Str("request_id", GetRequestID(c)).Msg("malformed authorization header")
			unauthorized(c)
			return
		}

		admin, err := auth.Authorize(c.Request.Context(), parts[1])
		if err != nil {
			logger.Debug().Str("request_id", GetRequestID(c)).Err(err).Msg("token rejected")
			unauthorized(c)
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}

// AdminFromContext returns the account stored by AdminAuth, or nil when the
// gate did not run
func AdminFromContext(c *gin.Context) *models.AdminAccount {
	if v, exists := c.Get(AdminContextKey); exists {
		if admin, ok := v.(*models.AdminAccount); ok {
			return admin
		}
	}
	return nil
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	c.Abort()
}
