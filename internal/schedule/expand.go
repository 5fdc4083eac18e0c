package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned for recurrence intervals below 1.
	// A zero or negative step would make expansion loop on the same date,
	// so it is rejected at the boundary instead of silently defaulted.
	ErrInvalidInterval = errors.New("recurrence interval must be a positive integer")
)

// Recurrence describes how a canonical event repeats.
type Recurrence struct {
	Unit     RecurrenceUnit
	Interval int
	// End is the inclusive last date an occurrence may fall on. The zero
	// Date means open-ended; expansion is then bounded by the horizon.
	End Date
}

// Event carries the fields of a canonical event the scheduling core needs.
// It is a plain value: Expand never mutates it.
type Event struct {
	ID          string
	RoomID      string
	Date        Date
	TimeStart   TimeOfDay
	TimeEnd     TimeOfDay
	AuthorID    string
	EmployeeIDs []string
	Recurrence  *Recurrence
	// RecurrenceParentID marks an event that is itself a generated
	// instance. Such events are never re-expanded.
	RecurrenceParentID string
}

// Occurrence is one concrete calendar-day projection of a canonical event.
// Occurrences are recomputed on every read and never persisted.
type Occurrence struct {
	Event Event
	Date  Date
	// OriginalDate is the canonical event's own date, kept so edit flows
	// can locate the true source record from any occurrence.
	OriginalDate Date
}

// Options bounds recurrence expansion.
type Options struct {
	// Today anchors the generation horizon.
	Today Date
	// HorizonMonths caps open-ended recurrences at Today + this many
	// months. Default 24.
	HorizonMonths int
	// MaxOccurrences is a hard step-count cap per event, guarding against
	// pathological rules that would otherwise produce very long (though
	// finite) loops. Default 1000.
	MaxOccurrences int
}

const (
	// DefaultHorizonMonths bounds open-ended recurrence generation.
	DefaultHorizonMonths = 24
	// DefaultMaxOccurrences bounds the number of instances per event.
	DefaultMaxOccurrences = 1000
)

// DefaultOptions returns expansion options anchored at today with the
// stock horizon and occurrence cap.
func DefaultOptions(today Date) Options {
	return Options{
		Today:          today,
		HorizonMonths:  DefaultHorizonMonths,
		MaxOccurrences: DefaultMaxOccurrences,
	}
}

// Horizon returns the last date any occurrence may be generated on.
func (o Options) Horizon() Date {
	months := o.HorizonMonths
	if months <= 0 {
		months = DefaultHorizonMonths
	}
	return o.Today.AddMonths(months)
}

func (o Options) maxOccurrences() int {
	if o.MaxOccurrences <= 0 {
		return DefaultMaxOccurrences
	}
	return o.MaxOccurrences
}

// Expand projects a canonical event onto its bounded sequence of calendar
// occurrences, ordered by date ascending.
//
// Rules:
//   - an event that is itself a generated instance (RecurrenceParentID set)
//     yields no occurrences at all;
//   - the canonical event is always the first occurrence;
//   - an absent or unrecognized recurrence unit means "no recurrence" and
//     yields the canonical occurrence only (conservative degrade: the input
//     layer has already validated the unit, so an unknown value here is
//     treated as data to display, not a reason to fail);
//   - the k-th occurrence falls on the canonical date advanced by k whole
//     steps of interval units, with month/year steps clamped to the end of
//     the target month, so a Jan 31 monthly event lands on Feb 28, Mar 31,
//     Apr 30;
//   - no occurrence is generated past min(recurrence end, horizon).
//
// Each call computes a fresh slice; the input event is never modified.
func Expand(ev Event, opts Options) ([]Occurrence, error) {
	if ev.RecurrenceParentID != "" {
		return nil, nil
	}

	out := []Occurrence{{Event: ev, Date: ev.Date, OriginalDate: ev.Date}}

	rec := ev.Recurrence
	if rec == nil || !rec.Unit.Valid() {
		return out, nil
	}
	if rec.Interval <= 0 {
		return nil, fmt.Errorf("event %s: %w (got %d)", ev.ID, ErrInvalidInterval, rec.Interval)
	}

	effectiveEnd := opts.Horizon()
	if !rec.End.IsZero() && rec.End.Before(effectiveEnd) {
		effectiveEnd = rec.End
	}

	limit := opts.maxOccurrences()
	for k := 1; ; k++ {
		next := AddStep(ev.Date, rec.Unit, rec.Interval*k)
		if next.After(effectiveEnd) {
			break
		}
		out = append(out, Occurrence{Event: ev, Date: next, OriginalDate: ev.Date})
		if len(out) >= limit {
			break
		}
	}

	return out, nil
}

// ExpandAll expands a list of canonical events and concatenates the results
// in input order. Generated instances in the input are skipped, matching
// Expand.
func ExpandAll(events []Event, opts Options) ([]Occurrence, error) {
	var out []Occurrence
	for _, ev := range events {
		occs, err := Expand(ev, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, occs...)
	}
	return out, nil
}
