//go:build unit

package cart_test

import (
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(t *testing.T, vehicleID uuid.UUID, pickup, ret time.Time, perDayCents int64) *cart.Item {
	t.Helper()
	dates, err := booking.NewDateRange(pickup, ret)
	require.NoError(t, err)
	return cart.NewItem(vehicleID, "BMW X5", "SUV", booking.NewMoney(perDayCents), dates, "Downtown")
}

func TestCartAddItem(t *testing.T) {
	userID := uuid.New()
	vehicleID := uuid.New()

	t.Run("identical vehicle and dates rejected", func(t *testing.T) {
		c := cart.NewCart(userID, nil)
		require.NoError(t, c.AddItem(item(t, vehicleID, date(2024, 7, 1), date(2024, 7, 5), 5000)))

		err := c.AddItem(item(t, vehicleID, date(2024, 7, 1), date(2024, 7, 5), 5000))
		assert.ErrorIs(t, err, cart.ErrDuplicateItem)
		assert.Equal(t, 1, c.Size())
	})

	t.Run("same vehicle with different dates allowed", func(t *testing.T) {
		c := cart.NewCart(userID, nil)
		require.NoError(t, c.AddItem(item(t, vehicleID, date(2024, 7, 1), date(2024, 7, 5), 5000)))
		require.NoError(t, c.AddItem(item(t, vehicleID, date(2024, 7, 10), date(2024, 7, 12), 5000)))
		assert.Equal(t, 2, c.Size())
	})
}

func TestCartSummary(t *testing.T) {
	c := cart.NewCart(uuid.New(), nil)
	require.NoError(t, c.AddItem(item(t, uuid.New(), date(2024, 7, 1), date(2024, 7, 5), 5000)))  // 4 × $50 = $200
	require.NoError(t, c.AddItem(item(t, uuid.New(), date(2024, 7, 3), date(2024, 7, 8), 2000)))  // 5 × $20 = $100

	assert.Equal(t, int64(30000), c.Subtotal().Cents())
	assert.Equal(t, int64(3000), c.Tax().Cents()) // 10% of subtotal
	assert.Equal(t, int64(33000), c.Total().Cents())
}
