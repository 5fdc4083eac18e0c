package http

import (
	"time"

	officeHttp "github.com/maenko-m/meeting-management-backend/internal/office/http"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
	"github.com/maenko-m/meeting-management-backend/internal/room"
)

// RoomTag is the compact room reference embedded in other responses.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoomResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Size         int                  `json:"size"`
	IsActive     bool                 `json:"isActive"`
	IsPublic     bool                 `json:"isPublic"`
	Description  string               `json:"description"`
	CalendarCode string               `json:"calendarCode"`
	Office       officeHttp.OfficeTag `json:"office"`
	PhotoPaths   []string             `json:"photoPath"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	photos := r.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		Size:         r.Size,
		IsActive:     r.IsActive,
		IsPublic:     r.IsPublic,
		Description:  r.Description,
		CalendarCode: r.CalendarCode,
		Office:       officeHttp.OfficeTag{ID: r.OfficeID, Name: r.OfficeName},
		PhotoPaths:   photos,
		CreatedAt:    r.CreatedAt,
	}
}

type ListRoomsRequest struct {
	request.ListParams
	OfficeID string `form:"office_id" binding:"omitempty,uuid"`
	Name     string `form:"name"`
	SizeMin  *int   `form:"size_min" binding:"omitempty,min=1"`
	IsPublic *bool  `form:"is_public"`
	IsActive *bool  `form:"is_active"`
}

type CreateRoomRequest struct {
	OfficeID     string `json:"officeId" binding:"required,uuid"`
	Name         string `json:"name" binding:"required"`
	Size         int    `json:"size" binding:"required,min=1"`
	IsPublic     bool   `json:"isPublic"`
	Description  string `json:"description"`
	CalendarCode string `json:"calendarCode"`
}

type UpdateRoomRequest struct {
	Name         *string `json:"name"`
	Size         *int    `json:"size" binding:"omitempty,min=1"`
	IsActive     *bool   `json:"isActive"`
	IsPublic     *bool   `json:"isPublic"`
	Description  *string `json:"description"`
	CalendarCode *string `json:"calendarCode"`
}

type PhotoResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewPhotoResponse(p *room.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		RoomID:    p.RoomID,
		Path:      p.Path,
		CreatedAt: p.CreatedAt,
	}
}
