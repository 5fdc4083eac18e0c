package room

import (
	"net/http"
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "meeting room not found")
	ErrPhotoNotFound  = apperror.New(http.StatusNotFound, "room photo not found")
	ErrEmptyName      = apperror.New(http.StatusBadRequest, "room name cannot be empty")
	ErrInvalidOffice  = apperror.New(http.StatusBadRequest, "invalid office_id")
	ErrInvalidSize    = apperror.New(http.StatusBadRequest, "room size must be positive")
	ErrPhotoTooLarge  = apperror.New(http.StatusBadRequest, "photo exceeds the size limit")
	ErrPhotoBadFormat = apperror.New(http.StatusBadRequest, "photo must be a JPEG or PNG image")
)

// Room is a bookable meeting room inside an office.
type Room struct {
	ID           string
	OfficeID     string
	OfficeName   string
	Name         string
	Size         int
	IsActive     bool
	IsPublic     bool
	Description  string
	CalendarCode string
	PhotoPaths   []string
	CreatedAt    time.Time
}

// Photo is one uploaded room photo plus its generated thumbnail.
type Photo struct {
	ID            string
	RoomID        string
	Path          string
	ThumbnailPath string
	CreatedAt     time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	OfficeID string
	Name     string
	SizeMin  *int
	IsPublic *bool
	IsActive *bool
	Page     int
	Limit    int
}
