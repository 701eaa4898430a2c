package waitlist

import (
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
)

// RangeFree reports whether the candidate range is clear of every
// occupying reservation range. Ranges touching at a single day count
// as a conflict.
func RangeFree(occupied []booking.DateRange, candidate booking.DateRange) bool {
	for _, r := range occupied {
		if r.Overlaps(candidate) {
			return false
		}
	}
	return true
}

// Match holds an entry whose desired range has become available.
type Match struct {
	Entry     *Entry
	VehicleID uuid.UUID
}

// FindMatches returns the active, unexpired entries whose desired range
// no longer overlaps any occupied range for their vehicle. Entries are
// not mutated; the caller flips matched entries to notified once the
// notification is durably recorded.
func FindMatches(entries []*Entry, occupiedByVehicle map[uuid.UUID][]booking.DateRange, now time.Time) []Match {
	var matches []Match
	for _, e := range entries {
		if e.Status() != StatusActive || e.IsExpired(now) {
			continue
		}
		if RangeFree(occupiedByVehicle[e.VehicleID()], e.Desired()) {
			matches = append(matches, Match{Entry: e, VehicleID: e.VehicleID()})
		}
	}
	return matches
}
