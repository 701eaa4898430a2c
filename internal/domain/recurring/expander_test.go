//go:build unit

package recurring_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeekly(t *testing.T) {
	windows, err := recurring.Expand(recurring.FrequencyWeekly, date(2024, 1, 1), date(2024, 1, 21))
	require.NoError(t, err)

	require.Len(t, windows, 3)
	for i, w := range windows {
		assert.Equal(t, date(2024, 1, 1).AddDate(0, 0, i*7), w.Pickup())
		assert.Equal(t, 7, w.Days())
	}
}

func TestExpandMonthly(t *testing.T) {
	windows, err := recurring.Expand(recurring.FrequencyMonthly, date(2024, 1, 15), date(2024, 4, 15))
	require.NoError(t, err)

	require.Len(t, windows, 4)
	assert.Equal(t, date(2024, 1, 15), windows[0].Pickup())
	assert.Equal(t, date(2024, 2, 15), windows[0].Return())
	assert.Equal(t, date(2024, 4, 15), windows[3].Pickup())
}

func TestExpandCap(t *testing.T) {
	windows, err := recurring.Expand(recurring.FrequencyWeekly, date(2024, 1, 1), date(2099, 1, 1))
	require.NoError(t, err)
	assert.Len(t, windows, recurring.MaxInstances)
}

func TestExpandDefaultEndDate(t *testing.T) {
	windows, err := recurring.Expand(recurring.FrequencyMonthly, date(2024, 1, 1), time.Time{})
	require.NoError(t, err)

	// Zero end date defaults to start+365d, which lands on 2024-12-31 in a
	// leap year. The 2025-01-01 pickup is past that bound.
	require.Len(t, windows, 12)
	assert.Equal(t, date(2024, 12, 1), windows[len(windows)-1].Pickup())
}

func TestExpandRejectsInvertedRange(t *testing.T) {
	_, err := recurring.Expand(recurring.FrequencyWeekly, date(2024, 5, 1), date(2024, 4, 1))
	assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
}

func TestExpandInstancePricing(t *testing.T) {
	windows, err := recurring.Expand(recurring.FrequencyWeekly, date(2024, 1, 1), date(2024, 1, 21))
	require.NoError(t, err)

	rate := booking.NewMoney(4000)
	for _, w := range windows {
		total := booking.Quote(w.Days(), rate, booking.RecurringDiscount)
		assert.Equal(t, int64(25200), total.Cents())
	}
}

func TestNewFrequency(t *testing.T) {
	f, err := recurring.NewFrequency("weekly")
	require.NoError(t, err)
	assert.Equal(t, recurring.FrequencyWeekly, f)

	_, err = recurring.NewFrequency("daily")
	assert.ErrorIs(t, err, errs.ErrInvalidFrequency)
}
