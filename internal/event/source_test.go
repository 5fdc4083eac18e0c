package event

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

type fakeRepository struct {
	events    []*Event
	listCalls int
}

func (f *fakeRepository) Create(_ context.Context, e *Event) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, e *Event) error {
	for i, old := range f.events {
		if old.ID == e.ID {
			f.events[i] = e
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepository) ListCanonical(_ context.Context, filter CanonicalFilter) ([]*Event, error) {
	f.listCalls++
	var out []*Event
	for _, e := range f.events {
		if filter.RoomID != "" && e.RoomID != filter.RoomID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.EmployeeID != "" && !involves(e, filter.EmployeeID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepository) ListPage(ctx context.Context, filter Filter) ([]*Event, int, error) {
	all, err := f.ListCanonical(ctx, CanonicalFilter{RoomID: filter.RoomID, Name: filter.Name})
	if err != nil {
		return nil, 0, err
	}
	return all, len(all), nil
}

func (f *fakeRepository) CountRoles(_ context.Context, employeeID string, _ CanonicalFilter) (int, int, error) {
	var author, member int
	for _, e := range f.events {
		switch {
		case e.AuthorID == employeeID:
			author++
		case involves(e, employeeID):
			member++
		}
	}
	return author, member, nil
}

func involves(e *Event, employeeID string) bool {
	if e.AuthorID == employeeID {
		return true
	}
	for _, id := range e.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

func fixedOptions() func() schedule.Options {
	return func() schedule.Options {
		return schedule.Options{
			Today:          schedule.MustDate("2025-03-10"),
			HorizonMonths:  24,
			MaxOccurrences: 1000,
		}
	}
}

func weeklyStandup(id, roomID, authorID string) *Event {
	return &Event{
		ID:        id,
		RoomID:    roomID,
		Name:      "Weekly standup",
		Date:      schedule.MustDate("2025-03-03"),
		TimeStart: schedule.MustTimeOfDay("09:00"),
		TimeEnd:   schedule.MustTimeOfDay("09:30"),
		AuthorID:  authorID,
		Recurrence: &schedule.Recurrence{
			Unit:     schedule.UnitWeek,
			Interval: 1,
			End:      schedule.MustDate("2025-03-31"),
		},
	}
}

func TestClientExpandedSourceExpandsRecurrences(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	src := NewClientExpandedSource(repo, time.Minute, fixedOptions())

	result, err := src.List(context.Background(), Filter{
		RoomID:     "room-1",
		EmployeeID: "alice",
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)

	// Mar 3, 10, 17, 24, 31.
	assert.Equal(t, 5, result.Total)
	require.Len(t, result.Occurrences, 5)
	assert.Equal(t, schedule.MustDate("2025-03-03"), result.Occurrences[0].Date)
	assert.Equal(t, schedule.MustDate("2025-03-31"), result.Occurrences[4].Date)
	for _, occ := range result.Occurrences {
		assert.Equal(t, schedule.MustDate("2025-03-03"), occ.OriginalDate)
		assert.Equal(t, "ev-1", occ.Event.ID)
	}
}

func TestClientExpandedSourceArchivedSplit(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	src := NewClientExpandedSource(repo, time.Minute, fixedOptions())

	archived := true
	result, err := src.List(context.Background(), Filter{
		RoomID:     "room-1",
		EmployeeID: "alice",
		Archived:   &archived,
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)

	// Only Mar 3 is strictly before today (Mar 10). The Mar 10 instance
	// still counts as upcoming.
	require.Len(t, result.Occurrences, 1)
	assert.Equal(t, schedule.MustDate("2025-03-03"), result.Occurrences[0].Date)

	archived = false
	result, err = src.List(context.Background(), Filter{
		RoomID:     "room-1",
		EmployeeID: "alice",
		Archived:   &archived,
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
}

func TestClientExpandedSourceRoleFilterAndCounts(t *testing.T) {
	authored := weeklyStandup("ev-1", "room-1", "alice")
	invited := &Event{
		ID:          "ev-2",
		RoomID:      "room-1",
		Name:        "Design review",
		Date:        schedule.MustDate("2025-03-12"),
		TimeStart:   schedule.MustTimeOfDay("14:00"),
		TimeEnd:     schedule.MustTimeOfDay("15:00"),
		AuthorID:    "bob",
		EmployeeIDs: []string{"alice", "carol"},
	}
	repo := &fakeRepository{events: []*Event{authored, invited}}
	src := NewClientExpandedSource(repo, time.Minute, fixedOptions())

	result, err := src.List(context.Background(), Filter{
		EmployeeID: "alice",
		Role:       RoleMember,
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)

	require.Len(t, result.Occurrences, 1)
	assert.Equal(t, "ev-2", result.Occurrences[0].Event.ID)

	// Counts cover both roles regardless of the selected tab.
	assert.Equal(t, 5, result.AuthorCount)
	assert.Equal(t, 1, result.MemberCount)
}

func TestClientExpandedSourceSortAndPagination(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	src := NewClientExpandedSource(repo, time.Minute, fixedOptions())

	result, err := src.List(context.Background(), Filter{
		RoomID:     "room-1",
		EmployeeID: "alice",
		Desc:       true,
		Page:       2,
		Limit:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	require.Len(t, result.Occurrences, 2)
	assert.Equal(t, schedule.MustDate("2025-03-17"), result.Occurrences[0].Date)
	assert.Equal(t, schedule.MustDate("2025-03-10"), result.Occurrences[1].Date)
}

func TestClientExpandedSourceCachesUntilInvalidated(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	src := NewClientExpandedSource(repo, time.Minute, fixedOptions())

	filter := Filter{RoomID: "room-1", EmployeeID: "alice", Page: 1, Limit: 20}

	_, err := src.List(context.Background(), filter)
	require.NoError(t, err)
	_, err = src.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	src.Invalidate()
	_, err = src.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestServerPaginatedSourceCanonicalOnly(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	src := NewServerPaginatedSource(repo)

	result, err := src.List(context.Background(), Filter{
		RoomID:     "room-1",
		EmployeeID: "alice",
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)

	// The recurring event appears once, on its stored date.
	require.Len(t, result.Occurrences, 1)
	assert.Equal(t, schedule.MustDate("2025-03-03"), result.Occurrences[0].Date)
	assert.Equal(t, 1, result.AuthorCount)
	assert.Equal(t, 0, result.MemberCount)
}

func TestPaginateBounds(t *testing.T) {
	occs := make([]Occurrence, 5)

	assert.Len(t, paginate(occs, 1, 2), 2)
	assert.Len(t, paginate(occs, 3, 2), 1)
	assert.Nil(t, paginate(occs, 4, 2))
	assert.Len(t, paginate(occs, 0, 0), 5)
}
