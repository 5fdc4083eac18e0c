package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArchived(t *testing.T) {
	today := MustDate("2025-03-15")

	assert.True(t, IsArchived(MustDate("2025-03-14"), today))
	assert.False(t, IsArchived(MustDate("2025-03-15"), today), "today is upcoming, not archived")
	assert.False(t, IsArchived(MustDate("2025-03-16"), today))
}

func TestPartitionByDate(t *testing.T) {
	today := MustDate("2025-03-15")
	occs := []Occurrence{
		occurrence("R1", "2025-03-10", "09:00", "10:00"),
		occurrence("R1", "2025-03-15", "09:00", "10:00"),
		occurrence("R1", "2025-03-20", "09:00", "10:00"),
		occurrence("R1", "2025-03-01", "09:00", "10:00"),
	}

	upcoming, archived := PartitionByDate(occs, today)

	assert.Equal(t, []string{"2025-03-15", "2025-03-20"}, dates(upcoming))
	assert.Equal(t, []string{"2025-03-10", "2025-03-01"}, dates(archived))
}

func TestSortOccurrences(t *testing.T) {
	occs := []Occurrence{
		occurrence("R1", "2025-03-20", "09:00", "10:00"),
		occurrence("R1", "2025-03-10", "14:00", "15:00"),
		occurrence("R1", "2025-03-10", "09:00", "10:00"),
	}

	SortOccurrences(occs, false)
	assert.Equal(t, []string{"2025-03-10", "2025-03-10", "2025-03-20"}, dates(occs))
	assert.Equal(t, MustTimeOfDay("09:00"), occs[0].Event.TimeStart)

	SortOccurrences(occs, true)
	assert.Equal(t, []string{"2025-03-20", "2025-03-10", "2025-03-10"}, dates(occs))
	assert.Equal(t, MustTimeOfDay("14:00"), occs[1].Event.TimeStart)
}

func TestSortOccurrencesStableTies(t *testing.T) {
	a := occurrence("R1", "2025-03-10", "09:00", "10:00")
	a.Event.ID = "a"
	b := occurrence("R1", "2025-03-10", "09:00", "11:00")
	b.Event.ID = "b"

	occs := []Occurrence{a, b}
	SortOccurrences(occs, false)

	assert.Equal(t, "a", occs[0].Event.ID, "full ties keep input order")
	assert.Equal(t, "b", occs[1].Event.ID)
}

func TestRolePartitionDisjoint(t *testing.T) {
	ev := Event{
		ID:          "ev-1",
		AuthorID:    "alice",
		EmployeeIDs: []string{"alice", "bob"},
	}

	// The author also appears in the attendee list, but organizer wins:
	// the two views never show the same event to the same user.
	assert.True(t, IsOrganizer(ev, "alice"))
	assert.False(t, IsParticipant(ev, "alice"))

	assert.False(t, IsOrganizer(ev, "bob"))
	assert.True(t, IsParticipant(ev, "bob"))

	assert.False(t, IsOrganizer(ev, "carol"))
	assert.False(t, IsParticipant(ev, "carol"))

	assert.False(t, IsOrganizer(ev, ""))
	assert.False(t, IsParticipant(ev, ""))
}
