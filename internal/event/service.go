package event

import (
	"context"
	"strings"

	"github.com/maenko-m/meeting-management-backend/internal/room"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

// Actor identifies who is performing a write and with what privileges.
type Actor struct {
	EmployeeID  string
	IsModerator bool
}

// CreateRequest carries the fields needed to book an event.
type CreateRequest struct {
	RoomID      string
	Name        string
	Description string
	Date        schedule.Date
	TimeStart   schedule.TimeOfDay
	TimeEnd     schedule.TimeOfDay
	EmployeeIDs []string
	Recurrence  *schedule.Recurrence
}

// UpdateRequest carries a partial event update; nil fields keep their
// current value. Recurrence uses a double pointer so "clear the rule" and
// "leave it alone" stay distinguishable.
type UpdateRequest struct {
	RoomID      *string
	Name        *string
	Description *string
	Date        *schedule.Date
	TimeStart   *schedule.TimeOfDay
	TimeEnd     *schedule.TimeOfDay
	EmployeeIDs *[]string
	Recurrence  **schedule.Recurrence
}

// TimelineEntry is one positioned block on a room's day timeline.
type TimelineEntry struct {
	Event *Event
	Date  schedule.Date
	Box   schedule.Box
	Color string
}

// Service defines business operations for events.
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateRequest) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateRequest) (*Event, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, f Filter) (*ListResult, error)
	// Timeline lays out one room's bookings for a day at the given render
	// width.
	Timeline(ctx context.Context, roomID string, date schedule.Date, width float64) ([]TimelineEntry, error)
}

type service struct {
	repo        Repository
	source      Source
	roomService room.Service
	window      schedule.Window
	opts        func() schedule.Options
}

// NewService wires the event service. opts supplies expansion bounds per
// call; window is the visible timeline range.
func NewService(repo Repository, source Source, roomService room.Service, window schedule.Window, opts func() schedule.Options) Service {
	return &service{
		repo:        repo,
		source:      source,
		roomService: roomService,
		window:      window,
		opts:        opts,
	}
}

func validateRecurrence(rec *schedule.Recurrence) error {
	if rec == nil {
		return nil
	}
	if !rec.Unit.Valid() || rec.Interval < 1 {
		return ErrInvalidRecurrence
	}
	return nil
}

func (s *service) Create(ctx context.Context, actor Actor, req CreateRequest) (*Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.TimeEnd <= req.TimeStart {
		return nil, ErrInvalidTimeRange
	}
	if err := validateRecurrence(req.Recurrence); err != nil {
		return nil, err
	}
	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	e := &Event{
		RoomID:      req.RoomID,
		Name:        name,
		Description: req.Description,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		AuthorID:    actor.EmployeeID,
		EmployeeIDs: req.EmployeeIDs,
		Recurrence:  req.Recurrence,
	}

	if err := s.checkConflicts(ctx, e, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.source.Invalidate()
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, actor Actor, id string, req UpdateRequest) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsModerator && e.AuthorID != actor.EmployeeID {
		return nil, ErrForbidden
	}

	if req.RoomID != nil {
		if _, err := s.roomService.GetByID(ctx, *req.RoomID); err != nil {
			return nil, err
		}
		e.RoomID = *req.RoomID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		e.Name = name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.TimeStart != nil {
		e.TimeStart = *req.TimeStart
	}
	if req.TimeEnd != nil {
		e.TimeEnd = *req.TimeEnd
	}
	if req.EmployeeIDs != nil {
		e.EmployeeIDs = *req.EmployeeIDs
	}
	if req.Recurrence != nil {
		e.Recurrence = *req.Recurrence
	}

	if e.TimeEnd <= e.TimeStart {
		return nil, ErrInvalidTimeRange
	}
	if err := validateRecurrence(e.Recurrence); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, e, e.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.source.Invalidate()
	return e, nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id string) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsModerator && e.AuthorID != actor.EmployeeID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.source.Invalidate()
	return nil
}

func (s *service) List(ctx context.Context, f Filter) (*ListResult, error) {
	return s.source.List(ctx, f)
}

// checkConflicts expands every booking in the candidate's room and tests
// each instance of the candidate against them. excludeID skips the record
// being edited so an event never conflicts with itself.
func (s *service) checkConflicts(ctx context.Context, e *Event, excludeID string) error {
	existing, err := s.repo.ListCanonical(ctx, CanonicalFilter{RoomID: e.RoomID})
	if err != nil {
		return err
	}

	opts := s.opts()
	var occupied []schedule.Occurrence
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		occs, err := schedule.Expand(other.Core(), opts)
		if err != nil {
			// A stored rule that no longer validates must not block new
			// bookings; its canonical slot still counts.
			occs = []schedule.Occurrence{{Event: other.Core(), Date: other.Date, OriginalDate: other.Date}}
		}
		occupied = append(occupied, occs...)
	}

	candidate := e.Core()
	candidateOccs, err := schedule.Expand(candidate, opts)
	if err != nil {
		return ErrInvalidRecurrence
	}
	for _, occ := range candidateOccs {
		c := schedule.Candidate{
			RoomID: e.RoomID,
			Date:   occ.Date,
			Start:  e.TimeStart,
			End:    e.TimeEnd,
		}
		if schedule.HasOverlap(c, occupied) {
			return ErrTimeConflict
		}
	}
	return nil
}

func (s *service) Timeline(ctx context.Context, roomID string, date schedule.Date, width float64) ([]TimelineEntry, error) {
	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	events, err := s.repo.ListCanonical(ctx, CanonicalFilter{RoomID: roomID})
	if err != nil {
		return nil, err
	}

	occs, err := expandEvents(events, s.opts())
	if err != nil {
		return nil, err
	}

	var day []Occurrence
	for _, occ := range occs {
		if occ.Date != date {
			continue
		}
		if !s.window.VisibleIn(occ.Event.TimeStart, occ.Event.TimeEnd) {
			continue
		}
		day = append(day, occ)
	}
	SortByDate(day, false)

	entries := make([]TimelineEntry, len(day))
	for i, occ := range day {
		entries[i] = TimelineEntry{
			Event: occ.Event,
			Date:  occ.Date,
			Box:   s.window.Position(occ.Event.TimeStart, occ.Event.TimeEnd, width),
			Color: schedule.ColorAt(i),
		}
	}
	return entries, nil
}
