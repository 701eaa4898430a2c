package booking

import "time"

type LateFeeQuote struct {
	DaysLate     int
	Fee          Money
	TotalWithFee Money
}

// QuoteLateFee computes the overdue surcharge for an active booking whose
// return date has passed: perDay × 1.5 × daysLate. It is a pure function of
// "today"; re-evaluating on the same day yields the same figure, so the
// stored annotation is always a recomputation rather than an accumulation.
// The second return is false when the booking is not overdue.
func (b *Booking) QuoteLateFee(today time.Time) (LateFeeQuote, bool) {
	today = Day(today)
	if b.status != StatusActive || !b.dates.Return().Before(today) {
		return LateFeeQuote{}, false
	}

	daysLate := DaysBetween(b.dates.Return(), today)
	fee := LateFee(b.pricePerDay, daysLate)

	return LateFeeQuote{
		DaysLate:     daysLate,
		Fee:          fee,
		TotalWithFee: b.totalPrice.Add(fee),
	}, true
}

// LateFee prices daysLate overdue days at the standard surcharge rate.
func LateFee(perDay Money, daysLate int) Money {
	return perDay.MulFactor(lateFeeMultiplier).MulDays(daysLate)
}
