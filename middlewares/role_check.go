package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/utils"
)

// RequireRole aborts with 403 unless the resolved role matches. Roles are
// mutually exclusive tiers; there is no inheritance, a manager gate passes
// only managers.
func RequireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}
		if role != required {
			utils.RespondError(c, http.StatusForbidden, errors.New("insufficient role for this endpoint"))
			c.Abort()
			return
		}
		c.Next()
	}
}
