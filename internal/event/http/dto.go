package http

import (
	"time"

	employeeHttp "github.com/maenko-m/meeting-management-backend/internal/employee/http"
	"github.com/maenko-m/meeting-management-backend/internal/event"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
	roomHttp "github.com/maenko-m/meeting-management-backend/internal/room/http"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

// Role query values kept verbatim from the web client.
const (
	roleParamAuthor = "организатор"
	roleParamMember = "участник"
)

type ListEventsRequest struct {
	request.ListParams
	RoomID    string `form:"room_id" binding:"omitempty,uuid"`
	OfficeID  string `form:"office_id" binding:"omitempty,uuid"`
	Name      string `form:"name"`
	Type      string `form:"type"`
	Archived  *bool  `form:"archived"`
	DescOrder bool   `form:"desc_order"`
}

// Role maps the web client's tab values onto the internal role filter.
func (r ListEventsRequest) Role() event.Role {
	switch r.Type {
	case roleParamAuthor, "author":
		return event.RoleAuthor
	case roleParamMember, "member":
		return event.RoleMember
	}
	return event.RoleAny
}

type RecurrenceDTO struct {
	Unit     string `json:"unit" binding:"required,oneof=day week month year"`
	Interval int    `json:"interval" binding:"required,min=1"`
	EndDate  string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

func (d *RecurrenceDTO) toModel() (*schedule.Recurrence, error) {
	if d == nil {
		return nil, nil
	}
	rec := &schedule.Recurrence{
		Unit:     schedule.RecurrenceUnit(d.Unit),
		Interval: d.Interval,
	}
	if d.EndDate != "" {
		end, err := schedule.ParseDate(d.EndDate)
		if err != nil {
			return nil, err
		}
		rec.End = end
	}
	return rec, nil
}

type RecurrenceResponse struct {
	Unit     string `json:"unit"`
	Interval int    `json:"interval"`
	EndDate  string `json:"endDate,omitempty"`
}

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	// OriginalDate points at the canonical record's own date so edits from
	// any instance land on the source row.
	OriginalDate string                   `json:"originalDate"`
	TimeStart    string                   `json:"timeStart"`
	TimeEnd      string                   `json:"timeEnd"`
	Room         roomHttp.RoomTag         `json:"room"`
	Author       employeeHttp.EmployeeTag `json:"author"`
	EmployeeIDs  []string                 `json:"employeeIds"`
	Recurrence   *RecurrenceResponse      `json:"recurrence,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func newEventResponse(e *event.Event, date, originalDate schedule.Date) EventResponse {
	ids := e.EmployeeIDs
	if ids == nil {
		ids = []string{}
	}
	resp := EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Date:         date.String(),
		OriginalDate: originalDate.String(),
		TimeStart:    e.TimeStart.String(),
		TimeEnd:      e.TimeEnd.String(),
		Room:         roomHttp.RoomTag{ID: e.RoomID, Name: e.RoomName},
		Author:       employeeHttp.EmployeeTag{ID: e.AuthorID, FullName: e.AuthorName},
		EmployeeIDs:  ids,
		CreatedAt:    e.CreatedAt,
	}
	if e.Recurrence != nil {
		rec := &RecurrenceResponse{
			Unit:     string(e.Recurrence.Unit),
			Interval: e.Recurrence.Interval,
		}
		if !e.Recurrence.End.IsZero() {
			rec.EndDate = e.Recurrence.End.String()
		}
		resp.Recurrence = rec
	}
	return resp
}

// NewEventResponse renders the canonical record on its own date.
func NewEventResponse(e *event.Event) EventResponse {
	return newEventResponse(e, e.Date, e.Date)
}

// NewOccurrenceResponse renders one calendar instance of an event.
func NewOccurrenceResponse(occ event.Occurrence) EventResponse {
	return newEventResponse(occ.Event, occ.Date, occ.OriginalDate)
}

type CreateEventRequest struct {
	RoomID      string         `json:"roomId" binding:"required,uuid"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Date        string         `json:"date" binding:"required,datetime=2006-01-02"`
	TimeStart   string         `json:"timeStart" binding:"required"`
	TimeEnd     string         `json:"timeEnd" binding:"required"`
	EmployeeIDs []string       `json:"employeeIds" binding:"omitempty,dive,uuid"`
	Recurrence  *RecurrenceDTO `json:"recurrence"`
}

type UpdateEventRequest struct {
	RoomID      *string   `json:"roomId" binding:"omitempty,uuid"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Date        *string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TimeStart   *string   `json:"timeStart"`
	TimeEnd     *string   `json:"timeEnd"`
	EmployeeIDs *[]string `json:"employeeIds" binding:"omitempty,dive,uuid"`
	// Recurrence present-and-null clears the rule; absent leaves it alone.
	Recurrence      *RecurrenceDTO `json:"recurrence"`
	ClearRecurrence bool           `json:"clearRecurrence"`
}

type TimelineRequest struct {
	Date  string  `form:"date" binding:"required,datetime=2006-01-02"`
	Width float64 `form:"width" binding:"omitempty,gt=0"`
}

type TimelineEntryResponse struct {
	Event EventResponse `json:"event"`
	Left  float64       `json:"left"`
	Width float64       `json:"width"`
	Color string        `json:"color"`
}

func NewTimelineEntryResponse(entry event.TimelineEntry) TimelineEntryResponse {
	return TimelineEntryResponse{
		Event: newEventResponse(entry.Event, entry.Date, entry.Event.Date),
		Left:  entry.Box.Left,
		Width: entry.Box.Width,
		Color: entry.Color,
	}
}
