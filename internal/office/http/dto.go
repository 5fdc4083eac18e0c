package http

import (
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/office"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
)

// OfficeTag is the compact office reference embedded in other responses.
type OfficeTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OfficeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	TimeZone  int       `json:"timeZone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewOfficeResponse(o *office.Office) OfficeResponse {
	return OfficeResponse{
		ID:        o.ID,
		Name:      o.Name,
		City:      o.City,
		TimeZone:  o.TimeZone,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}
}

type ListOfficesRequest struct {
	request.ListParams
	City     string `form:"city"`
	IsActive *bool  `form:"is_active"`
}

type CreateOfficeRequest struct {
	Name     string `json:"name" binding:"required"`
	City     string `json:"city" binding:"required"`
	TimeZone int    `json:"timeZone" binding:"min=-12,max=14"`
}

type UpdateOfficeRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	TimeZone *int    `json:"timeZone" binding:"omitempty,min=-12,max=14"`
	IsActive *bool   `json:"isActive"`
}
