package recurring

import (
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"
)

type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func NewFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	default:
		return "", errs.Mark(errs.New("frequency must be weekly or monthly"), errs.ErrInvalidFrequency)
	}
}

func (f Frequency) step(t time.Time) time.Time {
	if f == FrequencyMonthly {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 7)
}

const (
	// MaxInstances bounds a single plan regardless of its end date.
	MaxInstances = 52

	defaultPlanDays = 365
)

// Expand generates the concrete rental windows for a plan. Each window
// starts at the current step and runs one period, and generation stops
// once the step passes endDate or MaxInstances windows exist. A zero
// endDate defaults to startDate plus one year.
func Expand(frequency Frequency, startDate, endDate time.Time) ([]booking.DateRange, error) {
	start := booking.Day(startDate)
	end := booking.Day(endDate)
	if endDate.IsZero() {
		end = start.AddDate(0, 0, defaultPlanDays)
	}
	if end.Before(start) {
		return nil, errs.Mark(errs.New("end date precedes start date"), errs.ErrInvalidDateRange)
	}

	var windows []booking.DateRange
	for current := start; !current.After(end) && len(windows) < MaxInstances; current = frequency.step(current) {
		window, err := booking.NewDateRange(current, frequency.step(current))
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}
	if len(windows) == 0 {
		return nil, errs.Mark(errs.New("plan yields no instances"), errs.ErrEmptyRecurringPlan)
	}
	return windows, nil
}
