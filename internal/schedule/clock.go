// Package schedule holds the pure scheduling core: timezone-naive calendar
// values, recurring-event expansion, room-occupancy overlap detection,
// timeline geometry and event list policy. Nothing in this package performs
// I/O or keeps state between calls, so it is safe to use from any number of
// goroutines at once.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It deliberately carries no time zone: events are interpreted in the
// room's local wall-clock and cross-midnight bookings are not supported.
type TimeOfDay int

// ParseTimeOfDay parses "HH:mm" or "HH:mm:ss" into minutes since midnight.
// Malformed input is an error, never coerced to midnight.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm or HH:mm:ss", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute: %w", s, err)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: bad second: %w", s, err)
		}
		if sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid time %q: second out of range", s)
		}
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay is ParseTimeOfDay for trusted constants; it panics on error.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes returns the time as raw minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// String formats the time as "HH:mm:ss", matching the wire format the
// frontend exchanges with the API.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Date is a timezone-naive calendar date. Using a dedicated value type
// instead of time.Time keeps UTC offsets out of wall-clock comparisons.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// MustDate is ParseDate for trusted constants; it panics on error.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf projects a time.Time onto its calendar date, dropping the clock
// and zone.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in local time.
func Today() Date { return DateOf(time.Now()) }

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 ordering d against other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// AddMonths returns the date n calendar months after d, clamped to the last
// valid day of the target month: Jan 31 +1 month is Feb 28 (or 29), never
// Mar 2. Same convention as date-fns addMonths.
func (d Date) AddMonths(n int) Date {
	months := int(d.Month) - 1 + n
	year := d.Year + months/12
	month := time.Month(months%12 + 1)
	if months%12 < 0 {
		year--
		month += 12
	}
	day := d.Day
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// AddYears returns the date n calendar years after d, clamping Feb 29 to
// Feb 28 on non-leap years.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	day := d.Day
	if last := daysInMonth(year, d.Month); day > last {
		day = last
	}
	return Date{Year: year, Month: d.Month, Day: day}
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RecurrenceUnit is the calendar unit a recurrence rule steps by.
type RecurrenceUnit string

const (
	UnitDay   RecurrenceUnit = "day"
	UnitWeek  RecurrenceUnit = "week"
	UnitMonth RecurrenceUnit = "month"
	UnitYear  RecurrenceUnit = "year"
)

// Valid reports whether u is one of the recognized recurrence units.
func (u RecurrenceUnit) Valid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
		return true
	}
	return false
}

// AddStep advances d by interval units of u. Month and year steps clamp to
// the last valid day of the target month. Unknown units return d unchanged;
// callers are expected to have checked Valid first.
func AddStep(d Date, u RecurrenceUnit, interval int) Date {
	switch u {
	case UnitDay:
		return d.AddDays(interval)
	case UnitWeek:
		return d.AddDays(interval * 7)
	case UnitMonth:
		return d.AddMonths(interval)
	case UnitYear:
		return d.AddYears(interval)
	}
	return d
}
