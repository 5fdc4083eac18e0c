package auth

import "github.com/gin-gonic/gin"

// GetEmployeeID returns the authenticated employee's ID or empty string.
func GetEmployeeID(c *gin.Context) string {
	if v, ok := c.Get("employeeID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetEmployeeEmail returns the authenticated employee's email or empty string.
func GetEmployeeEmail(c *gin.Context) string {
	if v, ok := c.Get("employeeEmail"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsModerator reports whether the authenticated employee holds the
// moderator role claim.
func IsModerator(c *gin.Context) bool {
	if v, ok := c.Get("isModerator"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
