package http

import (
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/employee"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
)

// EmployeeTag is the compact employee reference embedded in event responses.
type EmployeeTag struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type EmployeeResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Surname     string     `json:"surname"`
	Patronymic  string     `json:"patronymic,omitempty"`
	FullName    string     `json:"fullName"`
	IsModerator bool       `json:"isModerator"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func NewEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Surname:     e.Surname,
		Patronymic:  e.Patronymic,
		FullName:    e.FullName(),
		IsModerator: e.IsModerator,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		LastLoginAt: e.LastLoginAt,
	}
}

type ListEmployeesRequest struct {
	request.ListParams
	Email    string `form:"email"`
	Name     string `form:"name"`
	IsActive *bool  `form:"is_active"`
}

type CreateEmployeeRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Patronymic  string `json:"patronymic"`
	IsModerator bool   `json:"isModerator"`
}
