package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/employee"
	employeeHttp "github.com/maenko-m/meeting-management-backend/internal/employee/http"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/response"
)

type AuthHandler struct {
	employeeService employee.Service
	jwtManager      *auth.JWTManager
}

func NewAuthHandler(employeeService employee.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		employeeService: employeeService,
		jwtManager:      jwtManager,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := h.employeeService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(e.ID, e.Email, e.IsModerator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Employee:    employeeHttp.NewEmployeeResponse(e),
	})
}
