package office

import (
	"net/http"
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "office not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "office name cannot be empty")
)

// Office is a company site that hosts meeting rooms. TimeZone is an hour
// offset carried for display only: all event times stay in the room's
// local wall-clock and are never converted.
type Office struct {
	ID        string
	Name      string
	City      string
	TimeZone  int
	IsActive  bool
	CreatedAt time.Time
}

// Filter defines parameters for listing offices.
type Filter struct {
	City     string
	IsActive *bool
	Page     int
	Limit    int
}
