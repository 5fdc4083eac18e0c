package schedule

// Candidate is a booking a user is about to submit, checked for conflicts
// before it ever reaches the API.
type Candidate struct {
	RoomID string
	Date   Date
	Start  TimeOfDay
	End    TimeOfDay
}

// HasOverlap reports whether the candidate booking conflicts with any of
// the given occurrences. Only occurrences in the same room on the same day
// are considered. The predicate is strict on both sides, so back-to-back
// bookings (one ending exactly when the next starts) do not conflict.
//
// Callers must pass the already-expanded occurrence list so recurring
// bookings are checked per occurrence, not just against the canonical
// record. Returns on the first conflict found.
func HasOverlap(c Candidate, existing []Occurrence) bool {
	for _, occ := range existing {
		if occ.Event.RoomID != c.RoomID {
			continue
		}
		if occ.Date != c.Date {
			continue
		}
		if c.Start < occ.Event.TimeEnd && occ.Event.TimeStart < c.End {
			return true
		}
	}
	return false
}
