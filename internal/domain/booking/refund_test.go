//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestCancellationRefund(t *testing.T) {
	total := booking.NewMoney(20000) // $200
	today := date(2024, 6, 1)

	cases := []struct {
		name          string
		pickup        time.Time
		tier          booking.RefundTier
		refundPercent float64
		refundCents   int64
	}{
		{"ten days out earns early bird", today.AddDate(0, 0, 10), booking.TierEarlyBird, 90, 18000},
		{"five days out is moderate", today.AddDate(0, 0, 5), booking.TierModerate, 50, 10000},
		{"one day out is late", today.AddDate(0, 0, 1), booking.TierLate, 25, 5000},
		{"already started forfeits refund", today.AddDate(0, 0, -2), booking.TierAfterPickup, 0, 0},
		// Boundaries: the tier floor is inclusive.
		{"exactly seven days is early bird", today.AddDate(0, 0, 7), booking.TierEarlyBird, 90, 18000},
		{"exactly three days is moderate", today.AddDate(0, 0, 3), booking.TierModerate, 50, 10000},
		{"pickup today is late, not forfeited", today, booking.TierLate, 25, 5000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := booking.CancellationRefund(total, tc.pickup, today)
			assert.Equal(t, tc.tier, quote.Tier)
			assert.Equal(t, tc.refundPercent, quote.RefundPercent)
			assert.Equal(t, tc.refundCents, quote.RefundAmount.Cents())
		})
	}

	t.Run("clock time on today does not shift the tier", func(t *testing.T) {
		lateEvening := today.Add(23 * time.Hour)
		quote := booking.CancellationRefund(total, today.AddDate(0, 0, 7), lateEvening)
		assert.Equal(t, booking.TierEarlyBird, quote.Tier)
	})
}
