package availability

import (
	"time"

	"rentwheels/internal/domain/booking"
)

type SelectionState string

const (
	SelectionNone  SelectionState = "none"
	SelectionStart SelectionState = "start-selected"
	SelectionRange SelectionState = "range-selected"
)

// RangeSelection is the calendar's date-picking state machine. A click
// either starts a fresh range, completes the pending one, or restarts when
// the clicked day is not after the pending start.
type RangeSelection struct {
	start *time.Time
	end   *time.Time
}

func NewRangeSelection() *RangeSelection {
	return &RangeSelection{}
}

// Click feeds one day into the machine and returns the completed range
// when this click closes it, nil otherwise.
func (s *RangeSelection) Click(day time.Time) *booking.DateRange {
	day = booking.Day(day)

	switch {
	case s.start == nil || s.end != nil:
		s.start = &day
		s.end = nil
	case day.After(*s.start):
		s.end = &day
		selected, err := booking.NewDateRange(*s.start, day)
		if err != nil {
			// Unreachable: day > start is checked above.
			return nil
		}
		return &selected
	default:
		s.start = &day
		s.end = nil
	}
	return nil
}

func (s *RangeSelection) State() SelectionState {
	switch {
	case s.start == nil:
		return SelectionNone
	case s.end == nil:
		return SelectionStart
	default:
		return SelectionRange
	}
}

func (s *RangeSelection) Start() *time.Time { return s.start }
func (s *RangeSelection) End() *time.Time   { return s.end }
