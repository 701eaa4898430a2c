package availability

import (
	"time"

	"rentwheels/internal/domain/booking"
)

// DayStatus classifies one calendar day's occupancy.
type DayStatus string

const (
	StatusAvailable DayStatus = "available"
	StatusPartial   DayStatus = "partial"
	StatusBooked    DayStatus = "booked"
)

// Fleet-wide ratio thresholds: a day where every available vehicle is
// taken is booked; 70% occupancy or more shows as partial.
const (
	bookedThreshold  = 1.0
	partialThreshold = 0.7
)

// Index maps midnight-normalized days to their occupancy status. Days not
// present are available.
type Index map[time.Time]DayStatus

func (idx Index) Status(day time.Time) DayStatus {
	if status, ok := idx[booking.Day(day)]; ok {
		return status
	}
	return StatusAvailable
}

// ForVehicle unions the inclusive [pickup, return] day sets of a single
// vehicle's occupying reservations. Every covered day is booked outright.
func ForVehicle(ranges []booking.DateRange) Index {
	idx := make(Index)
	for _, r := range ranges {
		for day := r.Pickup(); !day.After(r.Return()); day = day.AddDate(0, 0, 1) {
			idx[day] = StatusBooked
		}
	}
	return idx
}

// ForFleet classifies each day by the ratio of overlapping reservations to
// vehicles currently marked available. With no available vehicles every
// reserved day is booked.
func ForFleet(ranges []booking.DateRange, availableVehicles int) Index {
	counts := make(map[time.Time]int)
	for _, r := range ranges {
		for day := r.Pickup(); !day.After(r.Return()); day = day.AddDate(0, 0, 1) {
			counts[day]++
		}
	}

	idx := make(Index, len(counts))
	for day, count := range counts {
		idx[day] = classify(count, availableVehicles)
	}
	return idx
}

func classify(count, availableVehicles int) DayStatus {
	if availableVehicles <= 0 {
		return StatusBooked
	}
	ratio := float64(count) / float64(availableVehicles)
	switch {
	case ratio >= bookedThreshold:
		return StatusBooked
	case ratio >= partialThreshold:
		return StatusPartial
	default:
		return StatusAvailable
	}
}
