//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange(t *testing.T) {
	t.Run("days is ceil of the calendar difference", func(t *testing.T) {
		cases := []struct {
			name   string
			pickup time.Time
			ret    time.Time
			days   int
		}{
			{"single day", date(2024, 3, 1), date(2024, 3, 2), 1},
			{"standard week", date(2024, 3, 1), date(2024, 3, 8), 7},
			{"across month boundary", date(2024, 1, 30), date(2024, 2, 3), 4},
			{"clock time is truncated", date(2024, 3, 1).Add(9 * time.Hour), date(2024, 3, 4).Add(17 * time.Hour), 3},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := booking.NewDateRange(tc.pickup, tc.ret)
				require.NoError(t, err)
				assert.Equal(t, tc.days, r.Days())
			})
		}
	})

	t.Run("return must be after pickup", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2024, 3, 5), date(2024, 3, 5))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = booking.NewDateRange(date(2024, 3, 5), date(2024, 3, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("overlap is inclusive at both endpoints", func(t *testing.T) {
		existing, _ := booking.NewDateRange(date(2024, 5, 10), date(2024, 5, 15))

		touching, _ := booking.NewDateRange(date(2024, 5, 15), date(2024, 5, 20))
		assert.True(t, existing.Overlaps(touching))

		disjoint, _ := booking.NewDateRange(date(2024, 5, 16), date(2024, 5, 20))
		assert.False(t, existing.Overlaps(disjoint))

		contained, _ := booking.NewDateRange(date(2024, 5, 11), date(2024, 5, 12))
		assert.True(t, existing.Overlaps(contained))
	})
}

func TestQuote(t *testing.T) {
	perDay := booking.NewMoney(4000) // $40/day

	t.Run("full rate", func(t *testing.T) {
		assert.Equal(t, int64(20000), booking.Quote(5, perDay, 1).Cents())
	})

	t.Run("recurring discount", func(t *testing.T) {
		got := booking.Quote(7, perDay, booking.RecurringDiscount)
		assert.Equal(t, int64(25200), got.Cents()) // 7 × $40 × 0.9
	})
}

func TestLateFee(t *testing.T) {
	perDay := booking.NewMoney(10000)

	assert.Equal(t, int64(45000), booking.LateFee(perDay, 3).Cents()) // 3 × $100 × 1.5
	assert.Equal(t, int64(0), booking.LateFee(perDay, 0).Cents())
}

func TestLoyaltyPoints(t *testing.T) {
	cases := []struct {
		name   string
		cents  int64
		points int64
	}{
		{"exact multiple", 20000, 20},
		{"remainder floored", 19999, 19},
		{"under ten dollars", 999, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.points, booking.LoyaltyPoints(booking.NewMoney(tc.cents)))
		})
	}
}
