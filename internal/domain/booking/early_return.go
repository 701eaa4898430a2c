package booking

import (
	"errors"
	"time"
)

var (
	ErrNotActive         = errors.New("only active bookings can be returned")
	ErrNotStarted        = errors.New("cannot process early return before pickup date")
	ErrReturnOutOfWindow = errors.New("early return date must fall between today and the original return date")
)

type EarlyReturnQuote struct {
	ActualReturn time.Time
	DaysUsed     int
	DaysUnused   int
	CostUsed     Money
	Refund       Money
}

// QuoteEarlyReturn prices handing a vehicle back before the booked return
// date. Days already used are charged at the full daily rate; the remainder
// is refunded, floored at zero. The rental must be active and underway.
func (b *Booking) QuoteEarlyReturn(actualReturn, today time.Time) (EarlyReturnQuote, error) {
	if b.status != StatusActive {
		return EarlyReturnQuote{}, ErrNotActive
	}
	today = Day(today)
	if b.dates.Pickup().After(today) {
		return EarlyReturnQuote{}, ErrNotStarted
	}
	actualReturn = Day(actualReturn)
	if actualReturn.Before(today) || actualReturn.After(b.dates.Return()) {
		return EarlyReturnQuote{}, ErrReturnOutOfWindow
	}

	daysUsed := DaysBetween(b.dates.Pickup(), actualReturn)
	costUsed := b.pricePerDay.MulDays(daysUsed)
	refund := b.totalPrice.Sub(costUsed).ClampZero()

	return EarlyReturnQuote{
		ActualReturn: actualReturn,
		DaysUsed:     daysUsed,
		DaysUnused:   b.days - daysUsed,
		CostUsed:     costUsed,
		Refund:       refund,
	}, nil
}
