//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCartCommands(uow *fakeUoW) commands.CartCommands {
	return commands.NewCartCommands(uow, clock.NewMockClock(date(2024, 8, 1)))
}

func TestCartAddItem(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(5000)
	userID := uuid.New()
	cmds := newCartCommands(uow)

	itemID, err := cmds.AddItem(context.Background(), userID, commands.AddCartItemRequest{
		VehicleID:  snap.ID,
		PickupDate: date(2024, 8, 10),
		ReturnDate: date(2024, 8, 13),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, itemID)

	items := uow.state.cartItems[userID]
	require.Len(t, items, 1)
	assert.Equal(t, snap.ID, items[0].VehicleID())
	assert.Equal(t, "Test Sedan", items[0].VehicleName())
	assert.Equal(t, 3, items[0].Duration())
	assert.Equal(t, int64(15000), items[0].Total().Cents())
}

func TestCartAddItemUnknownVehicle(t *testing.T) {
	uow := newFakeUoW()
	cmds := newCartCommands(uow)

	_, err := cmds.AddItem(context.Background(), uuid.New(), commands.AddCartItemRequest{
		VehicleID:  uuid.New(),
		PickupDate: date(2024, 8, 10),
		ReturnDate: date(2024, 8, 13),
	})
	assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
}

func TestCartAddItemInvalidDates(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(5000)
	cmds := newCartCommands(uow)

	_, err := cmds.AddItem(context.Background(), uuid.New(), commands.AddCartItemRequest{
		VehicleID:  snap.ID,
		PickupDate: date(2024, 8, 13),
		ReturnDate: date(2024, 8, 10),
	})
	assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
}

func TestCartAddItemDuplicate(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(5000)
	userID := uuid.New()
	cmds := newCartCommands(uow)

	req := commands.AddCartItemRequest{
		VehicleID:  snap.ID,
		PickupDate: date(2024, 8, 10),
		ReturnDate: date(2024, 8, 13),
	}
	_, err := cmds.AddItem(context.Background(), userID, req)
	require.NoError(t, err)

	_, err = cmds.AddItem(context.Background(), userID, req)
	assert.ErrorIs(t, err, errs.ErrDuplicateCartItem)

	t.Run("same vehicle on different dates is allowed", func(t *testing.T) {
		_, err := cmds.AddItem(context.Background(), userID, commands.AddCartItemRequest{
			VehicleID:  snap.ID,
			PickupDate: date(2024, 9, 1),
			ReturnDate: date(2024, 9, 4),
		})
		assert.NoError(t, err)
	})
}

func TestCartRemoveItemNotFound(t *testing.T) {
	uow := newFakeUoW()
	cmds := newCartCommands(uow)

	err := cmds.RemoveItem(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
}

func TestCartCheckout(t *testing.T) {
	uow := newFakeUoW()
	sedan := uow.state.seedVehicleSnap(5000)
	suv := uow.state.seedVehicleSnap(8000)
	userID := uuid.New()
	cmds := newCartCommands(uow)

	// 3 days at 5000 and 2 days at 8000: subtotal 31000, tax 3100.
	_, err := cmds.AddItem(context.Background(), userID, commands.AddCartItemRequest{
		VehicleID:  sedan.ID,
		PickupDate: date(2024, 8, 10),
		ReturnDate: date(2024, 8, 13),
	})
	require.NoError(t, err)
	_, err = cmds.AddItem(context.Background(), userID, commands.AddCartItemRequest{
		VehicleID:  suv.ID,
		PickupDate: date(2024, 8, 20),
		ReturnDate: date(2024, 8, 22),
	})
	require.NoError(t, err)

	result, err := cmds.Checkout(context.Background(), userID)
	require.NoError(t, err)

	expected := &commands.CheckoutResult{
		BookingIDs:    result.BookingIDs,
		SubtotalCents: 31000,
		TaxCents:      3100,
		TotalCents:    34100,
		PointsEarned:  34,
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("checkout result mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, result.BookingIDs, 2)

	var batchID *uuid.UUID
	for _, id := range result.BookingIDs {
		b, ok := uow.state.bookings[id]
		require.True(t, ok)
		assert.Equal(t, userID, b.UserID())
		require.NotNil(t, b.CartID())
		if batchID == nil {
			batchID = b.CartID()
		}
		// Each booking of one checkout carries the same batch id.
		assert.Equal(t, *batchID, *b.CartID())
	}

	stats := uow.state.statsFor(userID)
	assert.Equal(t, 2, stats.Trips)
	assert.Equal(t, int64(34), stats.Points)

	assert.Empty(t, uow.state.cartItems[userID])
}

func TestCartCheckoutEmpty(t *testing.T) {
	uow := newFakeUoW()
	cmds := newCartCommands(uow)

	_, err := cmds.Checkout(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrCartEmpty)
}
