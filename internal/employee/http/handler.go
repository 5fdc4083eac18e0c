package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/employee"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/response"
)

type Handler struct {
	service employee.Service
}

func NewHandler(service employee.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := employee.Filter{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: req.IsActive,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	employees, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		items[i] = NewEmployeeResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEmployeeResponse(e))
}

// Me returns the profile of the authenticated employee.
func (h *Handler) Me(c *gin.Context) {
	employeeID := auth.GetEmployeeID(c)
	if employeeID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEmployeeResponse(e))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), employee.CreateRequest{
		Email:       body.Email,
		Password:    body.Password,
		Name:        body.Name,
		Surname:     body.Surname,
		Patronymic:  body.Patronymic,
		IsModerator: body.IsModerator,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewEmployeeResponse(e))
}
