package booking

import "time"

// RefundTier names the cancellation bracket a booking falls into based on
// how far ahead of pickup the customer cancels.
type RefundTier string

const (
	TierEarlyBird   RefundTier = "earlyBird"   // 7+ days out
	TierModerate    RefundTier = "moderate"    // 3-6 days out
	TierLate        RefundTier = "late"        // under 3 days
	TierAfterPickup RefundTier = "afterPickup" // rental already started
)

type RefundQuote struct {
	Tier            RefundTier
	RefundPercent   float64
	RefundAmount    Money
	DaysUntilPickup int
}

// CancellationRefund computes the tiered refund for cancelling a booking
// with the given total, as of today. First matching tier wins; a pickup in
// the past forfeits the refund entirely.
func CancellationRefund(totalPrice Money, pickup, today time.Time) RefundQuote {
	daysUntilPickup := DaysBetween(Day(today), Day(pickup))

	var tier RefundTier
	var percent float64
	switch {
	case daysUntilPickup < 0:
		tier, percent = TierAfterPickup, 0.00
	case daysUntilPickup >= 7:
		tier, percent = TierEarlyBird, 0.90
	case daysUntilPickup >= 3:
		tier, percent = TierModerate, 0.50
	default:
		tier, percent = TierLate, 0.25
	}

	return RefundQuote{
		Tier:            tier,
		RefundPercent:   percent * 100,
		RefundAmount:    totalPrice.MulFactor(percent),
		DaysUntilPickup: daysUntilPickup,
	}
}
