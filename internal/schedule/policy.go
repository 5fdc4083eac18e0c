package schedule

import "sort"

// IsArchived reports whether an occurrence date belongs to the archive:
// strictly before the start of today, at day granularity. An event earlier
// today is still "upcoming".
func IsArchived(d, today Date) bool {
	return d.Before(today)
}

// PartitionByDate splits occurrences into upcoming (today or later) and
// archived (before today), preserving input order within each part.
func PartitionByDate(occs []Occurrence, today Date) (upcoming, archived []Occurrence) {
	for _, occ := range occs {
		if IsArchived(occ.Date, today) {
			archived = append(archived, occ)
		} else {
			upcoming = append(upcoming, occ)
		}
	}
	return upcoming, archived
}

// SortOccurrences orders occurrences by (date, start time), ascending or
// descending per desc. The sort is stable: ties keep their input order.
func SortOccurrences(occs []Occurrence, desc bool) {
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

// IsOrganizer reports whether the user authored the event.
func IsOrganizer(ev Event, userID string) bool {
	return userID != "" && ev.AuthorID == userID
}

// IsParticipant reports whether the user is invited to the event but did
// not author it. Organizer and participant are disjoint for any user, so
// an event never shows up in both views at once.
func IsParticipant(ev Event, userID string) bool {
	if userID == "" || ev.AuthorID == userID {
		return false
	}
	for _, id := range ev.EmployeeIDs {
		if id == userID {
			return true
		}
	}
	return false
}
