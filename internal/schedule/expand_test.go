package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(today string) Options {
	return DefaultOptions(MustDate(today))
}

func recurringEvent(date string, unit RecurrenceUnit, interval int, end string) Event {
	rec := &Recurrence{Unit: unit, Interval: interval}
	if end != "" {
		rec.End = MustDate(end)
	}
	return Event{
		ID:         "ev-1",
		RoomID:     "room-1",
		Date:       MustDate(date),
		TimeStart:  MustTimeOfDay("09:00"),
		TimeEnd:    MustTimeOfDay("10:00"),
		AuthorID:   "emp-1",
		Recurrence: rec,
	}
}

func dates(occs []Occurrence) []string {
	out := make([]string, len(occs))
	for i, occ := range occs {
		out[i] = occ.Date.String()
	}
	return out
}

func TestExpandNonRecurring(t *testing.T) {
	ev := Event{ID: "ev-1", RoomID: "room-1", Date: MustDate("2025-03-01")}

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, "2025-03-01", occs[0].Date.String())
	assert.Equal(t, "2025-03-01", occs[0].OriginalDate.String())
}

func TestExpandMonthEndClamping(t *testing.T) {
	// Jan 31 monthly: each occurrence steps from the canonical date, so
	// months with 31 days get their true day back instead of drifting to
	// the 28th forever.
	ev := recurringEvent("2025-01-31", UnitMonth, 1, "2025-04-30")

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}, dates(occs))

	for _, occ := range occs {
		assert.Equal(t, "2025-01-31", occ.OriginalDate.String())
		assert.Equal(t, "ev-1", occ.Event.ID)
	}
}

func TestExpandWeekly(t *testing.T) {
	ev := recurringEvent("2025-03-03", UnitWeek, 1, "2025-03-24")

	occs, err := Expand(ev, testOptions("2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"}, dates(occs))
}

func TestExpandIdempotent(t *testing.T) {
	ev := recurringEvent("2025-01-31", UnitMonth, 1, "2025-06-30")
	opts := testOptions("2025-01-01")

	first, err := Expand(ev, opts)
	require.NoError(t, err)
	second, err := Expand(ev, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandCanonicalIncludedOnce(t *testing.T) {
	ev := recurringEvent("2025-02-10", UnitDay, 1, "2025-02-20")

	occs, err := Expand(ev, testOptions("2025-02-01"))
	require.NoError(t, err)

	count := 0
	for _, occ := range occs {
		if occ.Date == ev.Date {
			count++
		}
	}
	assert.Equal(t, 1, count, "canonical date must appear exactly once")
	assert.Equal(t, ev.Date, occs[0].Date, "canonical occurrence comes first")
}

func TestExpandNeverReExpandsGeneratedInstance(t *testing.T) {
	ev := recurringEvent("2025-02-10", UnitDay, 1, "2025-02-20")
	ev.RecurrenceParentID = "parent-1"

	occs, err := Expand(ev, testOptions("2025-02-01"))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestExpandHorizonBound(t *testing.T) {
	// Open-ended daily rule: capped at today + 24 months.
	ev := recurringEvent("2025-01-01", UnitMonth, 1, "")
	opts := Options{Today: MustDate("2025-01-15"), HorizonMonths: 24, MaxOccurrences: 10000}

	occs, err := Expand(ev, opts)
	require.NoError(t, err)
	require.NotEmpty(t, occs)

	horizon := MustDate("2027-01-15")
	for _, occ := range occs {
		assert.False(t, occ.Date.After(horizon), "occurrence %s beyond horizon", occ.Date)
	}
	last := occs[len(occs)-1]
	assert.Equal(t, "2027-01-01", last.Date.String())
}

func TestExpandRecurrenceEndBeforeHorizonWins(t *testing.T) {
	ev := recurringEvent("2025-01-01", UnitDay, 1, "2025-01-03")

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, dates(occs))
}

func TestExpandRecurrenceEndBeforeStart(t *testing.T) {
	ev := recurringEvent("2025-05-01", UnitWeek, 1, "2025-04-01")

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, "2025-05-01", occs[0].Date.String())
}

func TestExpandUnknownUnitDegradesToCanonical(t *testing.T) {
	ev := recurringEvent("2025-05-01", RecurrenceUnit("fortnight"), 1, "")

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	require.Len(t, occs, 1)
}

func TestExpandRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []int{0, -1} {
		ev := recurringEvent("2025-05-01", UnitDay, interval, "")
		_, err := Expand(ev, testOptions("2025-01-01"))
		require.ErrorIs(t, err, ErrInvalidInterval)
	}
}

func TestExpandOccurrenceCap(t *testing.T) {
	ev := recurringEvent("2025-01-01", UnitDay, 1, "")
	opts := Options{Today: MustDate("2025-01-01"), HorizonMonths: 24, MaxOccurrences: 50}

	occs, err := Expand(ev, opts)
	require.NoError(t, err)
	assert.Len(t, occs, 50)
}

func TestExpandLargeIntervalTerminates(t *testing.T) {
	ev := recurringEvent("2025-01-01", UnitDay, 1000, "")

	occs, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	// 24-month horizon fits the canonical date and not quite one 1000-day step.
	require.Len(t, occs, 1)
}

func TestExpandDoesNotMutateInput(t *testing.T) {
	ev := recurringEvent("2025-01-31", UnitMonth, 1, "2025-04-30")
	before := ev

	_, err := Expand(ev, testOptions("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, before, ev)
}

func TestExpandAll(t *testing.T) {
	events := []Event{
		recurringEvent("2025-03-03", UnitWeek, 1, "2025-03-10"),
		{ID: "ev-2", RoomID: "room-2", Date: MustDate("2025-03-05")},
		{ID: "ev-3", RoomID: "room-1", Date: MustDate("2025-03-06"), RecurrenceParentID: "ev-1"},
	}

	occs, err := ExpandAll(events, testOptions("2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-03", "2025-03-10", "2025-03-05"}, dates(occs))
}
