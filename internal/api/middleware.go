package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/employee"
)

// RequireModerator ensures the authenticated employee holds the moderator
// role. It MUST be used after auth.AuthRequired middleware.
//
// The token claim is checked first; the database read only confirms the
// role has not been revoked since the token was issued.
func RequireModerator(employeeService employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := auth.GetEmployeeID(c)
		if employeeID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !auth.IsModerator(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: moderator access required"})
			return
		}

		e, err := employeeService.GetByID(c.Request.Context(), employeeID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "employee not found"})
			return
		}
		if !e.IsModerator || !e.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: moderator access required"})
			return
		}

		c.Next()
	}
}
