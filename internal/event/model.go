package event

import (
	"net/http"
	"time"

	"github.com/maenko-m/meeting-management-backend/internal/pkg/apperror"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "event not found")
	ErrNameRequired      = apperror.New(http.StatusBadRequest, "event name is required")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "time_end must be after time_start")
	ErrInvalidRecurrence = apperror.New(http.StatusBadRequest, "invalid recurrence rule")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "room is already booked for this time")
	ErrForbidden         = apperror.New(http.StatusForbidden, "only the author or a moderator may modify this event")
)

// Event is a canonical meeting record. Recurring events are stored once;
// their calendar instances are computed on read and never persisted.
type Event struct {
	ID          string
	RoomID      string
	RoomName    string
	Name        string
	Description string
	Date        schedule.Date
	TimeStart   schedule.TimeOfDay
	TimeEnd     schedule.TimeOfDay
	AuthorID    string
	AuthorName  string
	EmployeeIDs []string
	Recurrence  *schedule.Recurrence
	// RecurrenceParentID is set on rows that were materialized from another
	// event by an external import. They are displayed but never re-expanded.
	RecurrenceParentID string
	CreatedAt          time.Time
}

// Core projects the record onto the value type the scheduling core works
// with.
func (e *Event) Core() schedule.Event {
	return schedule.Event{
		ID:                 e.ID,
		RoomID:             e.RoomID,
		Date:               e.Date,
		TimeStart:          e.TimeStart,
		TimeEnd:            e.TimeEnd,
		AuthorID:           e.AuthorID,
		EmployeeIDs:        e.EmployeeIDs,
		Recurrence:         e.Recurrence,
		RecurrenceParentID: e.RecurrenceParentID,
	}
}

// Role restricts a listing to the viewer's relationship with each event.
type Role string

const (
	RoleAny    Role = ""
	RoleAuthor Role = "author"
	RoleMember Role = "member"
)

// Filter defines the options for listing events.
type Filter struct {
	RoomID   string
	OfficeID string
	Name     string
	// EmployeeID is the viewer; role filtering and counts are computed
	// relative to this employee.
	EmployeeID string
	Role       Role
	// Archived selects past (true) or upcoming (false) instances; nil means
	// both.
	Archived *bool
	Desc     bool
	Page     int
	Limit    int
}

// CanonicalFilter selects canonical rows without pagination, for the
// expand-in-memory listing path and for conflict checks.
type CanonicalFilter struct {
	RoomID   string
	OfficeID string
	Name     string
	// EmployeeID keeps only events the employee authors or attends.
	EmployeeID string
}
