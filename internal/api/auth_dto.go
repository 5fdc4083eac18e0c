package api

import (
	employeeHttp "github.com/maenko-m/meeting-management-backend/internal/employee/http"
)

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string                        `json:"access_token"`
	Employee    employeeHttp.EmployeeResponse `json:"employee"`
}
