package event

import (
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maenko-m/meeting-management-backend/internal/room"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) GetByID(_ context.Context, id string) (*room.Room, error) {
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, room.ErrNotFound
}

func (f *fakeRoomService) Create(context.Context, room.CreateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) List(context.Context, room.Filter) ([]*room.Room, int, error) {
	panic("not used")
}

func (f *fakeRoomService) Update(context.Context, string, room.UpdateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) Delete(context.Context, string) error { panic("not used") }

func (f *fakeRoomService) UploadPhoto(context.Context, string, *multipart.FileHeader) (*room.Photo, error) {
	panic("not used")
}

func (f *fakeRoomService) OpenPhoto(context.Context, string, bool) (io.ReadCloser, *room.Photo, error) {
	panic("not used")
}

func (f *fakeRoomService) DeletePhoto(context.Context, string) error { panic("not used") }

func newTestService(repo *fakeRepository) Service {
	rooms := &fakeRoomService{rooms: map[string]*room.Room{
		"room-1": {ID: "room-1", Name: "Blue room"},
		"room-2": {ID: "room-2", Name: "Green room"},
	}}
	source := NewServerPaginatedSource(repo)
	return NewService(repo, source, rooms, schedule.DefaultWindow(), fixedOptions())
}

func TestCreateRejectsOverlapWithRecurringInstance(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	// Mar 24 is a generated Monday instance, not the stored date.
	_, err := svc.Create(context.Background(), Actor{EmployeeID: "bob"}, CreateRequest{
		RoomID:    "room-1",
		Name:      "Planning",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("09:15"),
		TimeEnd:   schedule.MustTimeOfDay("10:00"),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateAllowsBackToBack(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	e, err := svc.Create(context.Background(), Actor{EmployeeID: "bob"}, CreateRequest{
		RoomID:    "room-1",
		Name:      "Planning",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("09:30"),
		TimeEnd:   schedule.MustTimeOfDay("10:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", e.AuthorID)
}

func TestCreateAllowsSameSlotOtherRoom(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), Actor{EmployeeID: "bob"}, CreateRequest{
		RoomID:    "room-2",
		Name:      "Planning",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("09:00"),
		TimeEnd:   schedule.MustTimeOfDay("09:30"),
	})
	assert.NoError(t, err)
}

func TestCreateRecurringChecksEveryInstance(t *testing.T) {
	// A single fixed booking far in the future must still block a new
	// recurring series whose later instance collides with it.
	repo := &fakeRepository{events: []*Event{{
		ID:        "ev-1",
		RoomID:    "room-1",
		Name:      "Quarterly review",
		Date:      schedule.MustDate("2025-04-07"),
		TimeStart: schedule.MustTimeOfDay("10:00"),
		TimeEnd:   schedule.MustTimeOfDay("11:00"),
		AuthorID:  "alice",
	}}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), Actor{EmployeeID: "bob"}, CreateRequest{
		RoomID:    "room-1",
		Name:      "Weekly sync",
		Date:      schedule.MustDate("2025-03-17"),
		TimeStart: schedule.MustTimeOfDay("10:30"),
		TimeEnd:   schedule.MustTimeOfDay("11:30"),
		Recurrence: &schedule.Recurrence{
			Unit:     schedule.UnitWeek,
			Interval: 1,
			End:      schedule.MustDate("2025-05-01"),
		},
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)
	actor := Actor{EmployeeID: "bob"}

	_, err := svc.Create(context.Background(), actor, CreateRequest{
		RoomID:    "room-1",
		Name:      "  ",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("09:00"),
		TimeEnd:   schedule.MustTimeOfDay("10:00"),
	})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(context.Background(), actor, CreateRequest{
		RoomID:    "room-1",
		Name:      "Planning",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("10:00"),
		TimeEnd:   schedule.MustTimeOfDay("10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.Create(context.Background(), actor, CreateRequest{
		RoomID:     "room-1",
		Name:       "Planning",
		Date:       schedule.MustDate("2025-03-24"),
		TimeStart:  schedule.MustTimeOfDay("09:00"),
		TimeEnd:    schedule.MustTimeOfDay("10:00"),
		Recurrence: &schedule.Recurrence{Unit: "fortnight", Interval: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidRecurrence)

	_, err = svc.Create(context.Background(), actor, CreateRequest{
		RoomID:    "room-404",
		Name:      "Planning",
		Date:      schedule.MustDate("2025-03-24"),
		TimeStart: schedule.MustTimeOfDay("09:00"),
		TimeEnd:   schedule.MustTimeOfDay("10:00"),
	})
	assert.ErrorIs(t, err, room.ErrNotFound)
}

func TestUpdateSkipsSelfInConflictCheck(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	// Stretching the standup by 15 minutes only "conflicts" with its own
	// instances.
	end := schedule.MustTimeOfDay("09:45")
	e, err := svc.Update(context.Background(), Actor{EmployeeID: "alice"}, "ev-1", UpdateRequest{
		TimeEnd: &end,
	})
	require.NoError(t, err)
	assert.Equal(t, end, e.TimeEnd)
}

func TestUpdatePermissions(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	name := "Renamed"
	_, err := svc.Update(context.Background(), Actor{EmployeeID: "mallory"}, "ev-1", UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), Actor{EmployeeID: "mod", IsModerator: true}, "ev-1", UpdateRequest{Name: &name})
	assert.NoError(t, err)
}

func TestDeletePermissions(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), Actor{EmployeeID: "mallory"}, "ev-1")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), Actor{EmployeeID: "alice"}, "ev-1")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), Actor{EmployeeID: "alice"}, "ev-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClearRecurrence(t *testing.T) {
	repo := &fakeRepository{events: []*Event{weeklyStandup("ev-1", "room-1", "alice")}}
	svc := newTestService(repo)

	var cleared *schedule.Recurrence
	e, err := svc.Update(context.Background(), Actor{EmployeeID: "alice"}, "ev-1", UpdateRequest{
		Recurrence: &cleared,
	})
	require.NoError(t, err)
	assert.Nil(t, e.Recurrence)
}

func TestTimelineLayout(t *testing.T) {
	repo := &fakeRepository{events: []*Event{
		{
			ID:        "ev-1",
			RoomID:    "room-1",
			Name:      "Morning sync",
			Date:      schedule.MustDate("2025-03-24"),
			TimeStart: schedule.MustTimeOfDay("08:05"),
			TimeEnd:   schedule.MustTimeOfDay("09:07"),
			AuthorID:  "alice",
		},
		{
			ID:        "ev-2",
			RoomID:    "room-1",
			Name:      "Night batch",
			Date:      schedule.MustDate("2025-03-24"),
			TimeStart: schedule.MustTimeOfDay("23:00"),
			TimeEnd:   schedule.MustTimeOfDay("23:30"),
			AuthorID:  "alice",
		},
		weeklyStandup("ev-3", "room-1", "alice"),
	}}
	svc := newTestService(repo)

	entries, err := svc.Timeline(context.Background(), "room-1", schedule.MustDate("2025-03-24"), 500)
	require.NoError(t, err)

	// The 23:00 booking lies outside the 06:00-22:00 window and is
	// dropped; the recurring standup contributes its Mar 24 instance.
	require.Len(t, entries, 2)

	// 500px wide, 960 visible minutes, 10px margins: 0.5px per minute.
	assert.Equal(t, "ev-1", entries[0].Event.ID)
	assert.InDelta(t, 72.5, entries[0].Box.Left, 0.01)
	assert.InDelta(t, 31.0, entries[0].Box.Width, 0.01)

	assert.Equal(t, "ev-3", entries[1].Event.ID)
	assert.Equal(t, schedule.ColorAt(0), entries[0].Color)
	assert.Equal(t, schedule.ColorAt(1), entries[1].Color)
}

func TestTimelineUnknownRoom(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	_, err := svc.Timeline(context.Background(), "room-404", schedule.MustDate("2025-03-24"), 500)
	assert.ErrorIs(t, err, room.ErrNotFound)
}
