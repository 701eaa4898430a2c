//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
)

func seedBooking(t *testing.T, uow *fakeUoW, userID uuid.UUID, pickup, ret time.Time, priceCents int64) *booking.Booking {
	t.Helper()
	dates, err := booking.NewDateRange(pickup, ret)
	require.NoError(t, err)
	b := booking.NewBooking(userID, uuid.New(), "Test Sedan", dates, "Airport", booking.NewMoney(priceCents), nil)
	uow.state.bookings[b.ID()] = b
	return b
}

func TestCancelBookingRefundTiers(t *testing.T) {
	today := date(2024, 8, 1)

	cases := []struct {
		name        string
		pickup      time.Time
		wantTier    string
		wantPercent float64
		wantRefund  int64
	}{
		{"seven or more days out", date(2024, 8, 10), "earlyBird", 90, 27000},
		{"three to six days out", date(2024, 8, 5), "moderate", 50, 15000},
		{"under three days out", date(2024, 8, 2), "late", 25, 7500},
		{"after pickup", date(2024, 7, 28), "afterPickup", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uow := newFakeUoW()
			userID := uuid.New()
			b := seedBooking(t, uow, userID, tc.pickup, tc.pickup.AddDate(0, 0, 3), 10000)
			cmds := commands.NewBookingCommands(uow, clock.NewMockClock(today))

			result, err := cmds.CancelBooking(context.Background(), userID, b.ID(), commands.CancelBookingRequest{Reason: "change of plans"})
			require.NoError(t, err)

			assert.Equal(t, tc.wantTier, result.Tier)
			assert.Equal(t, tc.wantPercent, result.RefundPercent)
			assert.Equal(t, tc.wantRefund, result.RefundCents)

			assert.Equal(t, booking.StatusCancelled, b.Status())
			require.NotNil(t, b.Cancellation())
			assert.Equal(t, "change of plans", b.Cancellation().Reason)

			stats := uow.state.statsFor(userID)
			assert.Equal(t, -1, stats.Trips)
		})
	}
}

func TestCancelBookingTwice(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 10), date(2024, 8, 13), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	_, err := cmds.CancelBooking(context.Background(), userID, b.ID(), commands.CancelBookingRequest{})
	require.NoError(t, err)

	_, err = cmds.CancelBooking(context.Background(), userID, b.ID(), commands.CancelBookingRequest{})
	assert.ErrorIs(t, err, errs.ErrBookingAlreadyCanceled)
}

func TestCancelBookingOwnership(t *testing.T) {
	uow := newFakeUoW()
	b := seedBooking(t, uow, uuid.New(), date(2024, 8, 10), date(2024, 8, 13), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	_, err := cmds.CancelBooking(context.Background(), uuid.New(), b.ID(), commands.CancelBookingRequest{})
	assert.ErrorIs(t, err, commands.ErrBookingNotOwned)

	_, err = cmds.CancelBooking(context.Background(), uuid.New(), uuid.New(), commands.CancelBookingRequest{})
	assert.ErrorIs(t, err, errs.ErrBookingNotFound)
}

func TestModifyBooking(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 10), date(2024, 8, 13), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	err := cmds.ModifyBooking(context.Background(), userID, b.ID(), commands.ModifyBookingRequest{
		PickupDate: date(2024, 8, 15),
		ReturnDate: date(2024, 8, 20),
		Location:   "Downtown",
	})
	require.NoError(t, err)

	assert.Equal(t, date(2024, 8, 15), b.Dates().Pickup())
	assert.Equal(t, 5, b.Days())
	assert.Equal(t, int64(50000), b.TotalPrice().Cents())
	assert.Equal(t, "Downtown", b.Location())

	// The previous terms stay on the audit trail.
	require.Len(t, b.Modifications(), 1)
	assert.Equal(t, date(2024, 8, 10), b.Modifications()[0].OldPickup)
	assert.Equal(t, int64(30000), b.Modifications()[0].OldTotal.Cents())
}

func TestModifyBookingAfterPickup(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 10), date(2024, 8, 13), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 10)))

	err := cmds.ModifyBooking(context.Background(), userID, b.ID(), commands.ModifyBookingRequest{
		PickupDate: date(2024, 8, 15),
		ReturnDate: date(2024, 8, 20),
		Location:   "Downtown",
	})
	assert.ErrorIs(t, err, errs.ErrBookingNotActive)
}

func TestEarlyReturn(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 10), date(2024, 8, 15), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 12)))

	result, err := cmds.EarlyReturn(context.Background(), userID, b.ID(), date(2024, 8, 12))
	require.NoError(t, err)

	assert.Equal(t, 2, result.DaysUsed)
	assert.Equal(t, int64(30000), result.RefundCents)

	assert.Equal(t, booking.StatusCompleted, b.Status())
	require.NotNil(t, b.ActualReturn())
	assert.Equal(t, date(2024, 8, 12), *b.ActualReturn())
}

func TestEarlyReturnBeforePickup(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 10), date(2024, 8, 15), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 5)))

	_, err := cmds.EarlyReturn(context.Background(), userID, b.ID(), date(2024, 8, 5))
	assert.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestLateReturn(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 1), date(2024, 8, 5), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 8)))

	result, err := cmds.LateReturn(context.Background(), userID, b.ID())
	require.NoError(t, err)

	// 3 days late at 10000 × 1.5 per day on a 40000 base.
	assert.Equal(t, 3, result.DaysLate)
	assert.Equal(t, int64(45000), result.LateFeeCents)
	assert.Equal(t, int64(85000), result.TotalWithFeeCents)

	assert.Equal(t, booking.StatusCompleted, b.Status())
}

func TestLateReturnNotOverdue(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	b := seedBooking(t, uow, userID, date(2024, 8, 1), date(2024, 8, 5), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 3)))

	_, err := cmds.LateReturn(context.Background(), userID, b.ID())
	assert.ErrorIs(t, err, errs.ErrBookingNotActive)
}

func TestRefreshLateFees(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	overdue := seedBooking(t, uow, userID, date(2024, 8, 1), date(2024, 8, 5), 10000)
	current := seedBooking(t, uow, userID, date(2024, 8, 1), date(2024, 8, 20), 10000)
	cmds := commands.NewBookingCommands(uow, clock.NewMockClock(date(2024, 8, 7)))

	updated, err := cmds.RefreshLateFees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	require.NotNil(t, overdue.LateFeeRecord())
	assert.Equal(t, 2, overdue.LateFeeRecord().DaysLate)
	assert.Equal(t, int64(30000), overdue.LateFeeRecord().Fee.Cents())
	assert.Nil(t, current.LateFeeRecord())

	// Overdue bookings stay active; the fee is an annotation, not a closure.
	assert.Equal(t, booking.StatusActive, overdue.Status())

	t.Run("rerunning the same day reprices to the same figure", func(t *testing.T) {
		updated, err := cmds.RefreshLateFees(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		assert.Equal(t, int64(30000), overdue.LateFeeRecord().Fee.Cents())
	})
}
