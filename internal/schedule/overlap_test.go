package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occurrence(roomID, date, start, end string) Occurrence {
	d := MustDate(date)
	return Occurrence{
		Event: Event{
			ID:        "existing",
			RoomID:    roomID,
			Date:      d,
			TimeStart: MustTimeOfDay(start),
			TimeEnd:   MustTimeOfDay(end),
		},
		Date:         d,
		OriginalDate: d,
	}
}

func candidate(roomID, date, start, end string) Candidate {
	return Candidate{
		RoomID: roomID,
		Date:   MustDate(date),
		Start:  MustTimeOfDay(start),
		End:    MustTimeOfDay(end),
	}
}

func TestHasOverlap(t *testing.T) {
	tests := []struct {
		name     string
		cand     Candidate
		existing []Occurrence
		want     bool
	}{
		{
			name:     "partial overlap conflicts",
			cand:     candidate("R1", "2025-03-01", "09:30", "10:30"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     true,
		},
		{
			name:     "back to back does not conflict",
			cand:     candidate("R1", "2025-03-01", "10:00", "11:00"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     false,
		},
		{
			name:     "candidate ends when existing starts",
			cand:     candidate("R1", "2025-03-01", "08:00", "09:00"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     false,
		},
		{
			name:     "containment conflicts",
			cand:     candidate("R1", "2025-03-01", "09:15", "09:45"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     true,
		},
		{
			name:     "different room never conflicts",
			cand:     candidate("R2", "2025-03-01", "09:00", "10:00"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     false,
		},
		{
			name:     "different day never conflicts",
			cand:     candidate("R1", "2025-03-02", "09:00", "10:00"),
			existing: []Occurrence{occurrence("R1", "2025-03-01", "09:00", "10:00")},
			want:     false,
		},
		{
			name: "first conflict wins among many",
			cand: candidate("R1", "2025-03-01", "09:30", "10:30"),
			existing: []Occurrence{
				occurrence("R1", "2025-03-01", "06:00", "07:00"),
				occurrence("R1", "2025-03-01", "09:00", "10:00"),
				occurrence("R1", "2025-03-01", "12:00", "13:00"),
			},
			want: true,
		},
		{
			name:     "no existing bookings",
			cand:     candidate("R1", "2025-03-01", "09:00", "10:00"),
			existing: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOverlap(tt.cand, tt.existing))
		})
	}
}

func TestHasOverlapSymmetry(t *testing.T) {
	a := candidate("R1", "2025-03-01", "09:00", "10:00")
	b := candidate("R1", "2025-03-01", "09:30", "10:30")

	asOccurrence := func(c Candidate) []Occurrence {
		return []Occurrence{{
			Event: Event{RoomID: c.RoomID, Date: c.Date, TimeStart: c.Start, TimeEnd: c.End},
			Date:  c.Date,
		}}
	}

	assert.Equal(t,
		HasOverlap(a, asOccurrence(b)),
		HasOverlap(b, asOccurrence(a)),
	)
}

func TestHasOverlapAgainstExpandedRecurrence(t *testing.T) {
	// A weekly booking occupies every Monday; a candidate three weeks out
	// must conflict even though the canonical record sits on a different date.
	weekly := recurringEvent("2025-03-03", UnitWeek, 1, "2025-04-28")
	occs, err := Expand(weekly, testOptions("2025-03-01"))
	require.NoError(t, err)

	conflict := candidate("room-1", "2025-03-24", "09:30", "10:30")
	assert.True(t, HasOverlap(conflict, occs))

	free := candidate("room-1", "2025-03-25", "09:30", "10:30")
	assert.False(t, HasOverlap(free, occs))
}
