package event

import (
	"context"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

// Occurrence is one calendar instance of an event, ready for display.
type Occurrence struct {
	Event *Event
	Date  schedule.Date
	// OriginalDate is the canonical record's date; edit flows resolve the
	// source row through it.
	OriginalDate schedule.Date
}

// ListResult is a page of occurrences plus the viewer's role totals.
type ListResult struct {
	Occurrences []Occurrence
	Total       int
	AuthorCount int
	MemberCount int
}

// Source produces event listings. Two strategies exist: expanding every
// recurring event in memory, or delegating filtering and pagination to SQL
// over canonical rows only. They agree on the result shape so handlers do
// not care which one is wired.
type Source interface {
	List(ctx context.Context, f Filter) (*ListResult, error)
	// Invalidate drops any cached listings after a write.
	Invalidate()
}

// ClientExpandedSource loads canonical rows, expands recurrences, then
// filters, sorts and paginates in memory. Whole expanded sets are cached
// per coarse filter because expansion of a busy office is the expensive
// part, not the Postgres read.
type ClientExpandedSource struct {
	repo  Repository
	cache *gocache.Cache
	opts  func() schedule.Options
}

// NewClientExpandedSource builds the in-memory strategy. opts supplies the
// expansion bounds per call so "today" is never frozen at construction.
func NewClientExpandedSource(repo Repository, cacheTTL time.Duration, opts func() schedule.Options) *ClientExpandedSource {
	return &ClientExpandedSource{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
		opts:  opts,
	}
}

func canonicalKey(f CanonicalFilter) string {
	return fmt.Sprintf("events:%s:%s:%s", f.RoomID, f.OfficeID, f.Name)
}

func (s *ClientExpandedSource) canonical(ctx context.Context, f CanonicalFilter) ([]*Event, error) {
	key := canonicalKey(f)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*Event), nil
	}
	events, err := s.repo.ListCanonical(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, events)
	return events, nil
}

func (s *ClientExpandedSource) List(ctx context.Context, f Filter) (*ListResult, error) {
	events, err := s.canonical(ctx, CanonicalFilter{
		RoomID:   f.RoomID,
		OfficeID: f.OfficeID,
		Name:     f.Name,
	})
	if err != nil {
		return nil, err
	}

	opts := s.opts()
	occs, err := expandEvents(events, opts)
	if err != nil {
		return nil, err
	}

	// Archived split happens before role filtering so the author/member
	// badges stay in step with the active tab.
	if f.Archived != nil {
		kept := occs[:0:0]
		for _, occ := range occs {
			if schedule.IsArchived(occ.Date, opts.Today) == *f.Archived {
				kept = append(kept, occ)
			}
		}
		occs = kept
	}

	result := &ListResult{}
	if f.EmployeeID != "" {
		for _, occ := range occs {
			core := occ.Event.Core()
			if schedule.IsOrganizer(core, f.EmployeeID) {
				result.AuthorCount++
			} else if schedule.IsParticipant(core, f.EmployeeID) {
				result.MemberCount++
			}
		}
	}

	if f.EmployeeID != "" && f.Role != RoleAny {
		kept := occs[:0:0]
		for _, occ := range occs {
			core := occ.Event.Core()
			switch f.Role {
			case RoleAuthor:
				if schedule.IsOrganizer(core, f.EmployeeID) {
					kept = append(kept, occ)
				}
			case RoleMember:
				if schedule.IsParticipant(core, f.EmployeeID) {
					kept = append(kept, occ)
				}
			}
		}
		occs = kept
	} else if f.EmployeeID != "" {
		kept := occs[:0:0]
		for _, occ := range occs {
			core := occ.Event.Core()
			if schedule.IsOrganizer(core, f.EmployeeID) || schedule.IsParticipant(core, f.EmployeeID) {
				kept = append(kept, occ)
			}
		}
		occs = kept
	}

	SortByDate(occs, f.Desc)

	result.Total = len(occs)
	result.Occurrences = paginate(occs, f.Page, f.Limit)
	return result, nil
}

// Invalidate drops all cached canonical sets. Writes are rare next to
// reads, so flushing everything beats tracking per-key dependencies.
func (s *ClientExpandedSource) Invalidate() {
	s.cache.Flush()
}

// ServerPaginatedSource pushes filtering, ordering and pagination into SQL.
// Recurring events appear once, on their canonical date; this is the
// strategy for archives and admin views where expansion noise is unwanted.
type ServerPaginatedSource struct {
	repo Repository
}

func NewServerPaginatedSource(repo Repository) *ServerPaginatedSource {
	return &ServerPaginatedSource{repo: repo}
}

func (s *ServerPaginatedSource) List(ctx context.Context, f Filter) (*ListResult, error) {
	events, total, err := s.repo.ListPage(ctx, f)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Total: total}
	for _, e := range events {
		result.Occurrences = append(result.Occurrences, Occurrence{
			Event:        e,
			Date:         e.Date,
			OriginalDate: e.Date,
		})
	}

	if f.EmployeeID != "" {
		author, member, err := s.repo.CountRoles(ctx, f.EmployeeID, CanonicalFilter{
			RoomID:   f.RoomID,
			OfficeID: f.OfficeID,
			Name:     f.Name,
		})
		if err != nil {
			return nil, err
		}
		result.AuthorCount, result.MemberCount = author, member
	}

	return result, nil
}

func (s *ServerPaginatedSource) Invalidate() {}

// expandEvents projects canonical records onto occurrences, keeping the
// link back to the full record for rendering.
func expandEvents(events []*Event, opts schedule.Options) ([]Occurrence, error) {
	var out []Occurrence
	for _, e := range events {
		occs, err := schedule.Expand(e.Core(), opts)
		if err != nil {
			return nil, err
		}
		for _, occ := range occs {
			out = append(out, Occurrence{
				Event:        e,
				Date:         occ.Date,
				OriginalDate: occ.OriginalDate,
			})
		}
	}
	return out, nil
}

// SortByDate orders occurrences by (date, start time). Stable, so equal
// slots keep their expansion order.
func SortByDate(occs []Occurrence, desc bool) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			if desc {
				return c > 0
			}
			return c < 0
		}
		if desc {
			return a.Event.TimeStart > b.Event.TimeStart
		}
		return a.Event.TimeStart < b.Event.TimeStart
	})
}

func paginate(occs []Occurrence, page, limit int) []Occurrence {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(occs) {
		return nil
	}
	end := start + limit
	if end > len(occs) {
		end = len(occs)
	}
	return occs[start:end]
}
