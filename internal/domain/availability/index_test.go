//go:build unit

package availability_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/availability"
	"rentwheels/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateRange(t *testing.T, pickup, ret time.Time) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(pickup, ret)
	require.NoError(t, err)
	return r
}

func TestForVehicle(t *testing.T) {
	idx := availability.ForVehicle([]booking.DateRange{
		dateRange(t, date(2024, 8, 5), date(2024, 8, 8)),
		dateRange(t, date(2024, 8, 20), date(2024, 8, 22)),
	})

	// Both ranges booked inclusive of the return day.
	for _, d := range []time.Time{date(2024, 8, 5), date(2024, 8, 7), date(2024, 8, 8), date(2024, 8, 20), date(2024, 8, 22)} {
		assert.Equal(t, availability.StatusBooked, idx.Status(d), d.Format("2006-01-02"))
	}

	// The gap and everything outside stays available.
	for _, d := range []time.Time{date(2024, 8, 4), date(2024, 8, 9), date(2024, 8, 19), date(2024, 8, 23)} {
		assert.Equal(t, availability.StatusAvailable, idx.Status(d), d.Format("2006-01-02"))
	}
}

func TestForFleet(t *testing.T) {
	day := date(2024, 8, 10)
	overlapping := func(n int) []booking.DateRange {
		ranges := make([]booking.DateRange, n)
		for i := range ranges {
			ranges[i] = dateRange(t, day, day.AddDate(0, 0, 1))
		}
		return ranges
	}

	t.Run("full occupancy is booked", func(t *testing.T) {
		idx := availability.ForFleet(overlapping(10), 10)
		assert.Equal(t, availability.StatusBooked, idx.Status(day))
	})

	t.Run("seventy percent is partial", func(t *testing.T) {
		idx := availability.ForFleet(overlapping(7), 10)
		assert.Equal(t, availability.StatusPartial, idx.Status(day))
	})

	t.Run("just under seventy percent is available", func(t *testing.T) {
		idx := availability.ForFleet(overlapping(6), 10)
		assert.Equal(t, availability.StatusAvailable, idx.Status(day))
	})

	t.Run("no available vehicles means booked", func(t *testing.T) {
		idx := availability.ForFleet(overlapping(1), 0)
		assert.Equal(t, availability.StatusBooked, idx.Status(day))
	})
}

func TestRangeSelection(t *testing.T) {
	t.Run("start then later day completes the range", func(t *testing.T) {
		sel := availability.NewRangeSelection()
		assert.Equal(t, availability.SelectionNone, sel.State())

		assert.Nil(t, sel.Click(date(2024, 8, 5)))
		assert.Equal(t, availability.SelectionStart, sel.State())

		selected := sel.Click(date(2024, 8, 9))
		require.NotNil(t, selected)
		assert.Equal(t, date(2024, 8, 5), selected.Pickup())
		assert.Equal(t, date(2024, 8, 9), selected.Return())
		assert.Equal(t, availability.SelectionRange, sel.State())
	})

	t.Run("clicking at or before the start restarts", func(t *testing.T) {
		sel := availability.NewRangeSelection()
		sel.Click(date(2024, 8, 5))

		assert.Nil(t, sel.Click(date(2024, 8, 3)))
		assert.Equal(t, availability.SelectionStart, sel.State())
		assert.Equal(t, date(2024, 8, 3), *sel.Start())

		assert.Nil(t, sel.Click(date(2024, 8, 3)))
		assert.Equal(t, availability.SelectionStart, sel.State())
	})

	t.Run("clicking after a completed range starts over", func(t *testing.T) {
		sel := availability.NewRangeSelection()
		sel.Click(date(2024, 8, 5))
		require.NotNil(t, sel.Click(date(2024, 8, 9)))

		assert.Nil(t, sel.Click(date(2024, 8, 20)))
		assert.Equal(t, availability.SelectionStart, sel.State())
		assert.Nil(t, sel.End())
	})
}
