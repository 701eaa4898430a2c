//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
)

func TestCreateRecurring(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(10000)
	userID := uuid.New()
	cmds := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	result, err := cmds.CreateRecurring(context.Background(), userID, commands.CreateRecurringRequest{
		VehicleID: snap.ID,
		Frequency: "weekly",
		StartDate: date(2024, 8, 5),
		EndDate:   date(2024, 8, 19),
	})
	require.NoError(t, err)

	// Three weekly instances, each 7 days at 10000 with the plan discount.
	require.Len(t, result.BookingIDs, 3)
	assert.Equal(t, int64(189000), result.TotalPriceCents)
	assert.Equal(t, int64(189), result.PointsEarned)

	rental, ok := uow.state.rentals[result.RentalID]
	require.True(t, ok)
	assert.Equal(t, recurring.StatusActive, rental.Status())
	assert.Equal(t, userID, rental.UserID())
	assert.Len(t, rental.BookingIDs(), 3)

	for i, id := range result.BookingIDs {
		b, found := uow.state.bookings[id]
		require.True(t, found)
		assert.True(t, b.IsRecurring())
		require.NotNil(t, b.RecurringParentID())
		assert.Equal(t, result.RentalID, *b.RecurringParentID())
		assert.Equal(t, "weekly", b.RecurringType())
		assert.Equal(t, date(2024, 8, 5).AddDate(0, 0, i*7), b.Dates().Pickup())
		assert.Equal(t, int64(63000), b.TotalPrice().Cents())
	}

	stats := uow.state.statsFor(userID)
	assert.Equal(t, 3, stats.Trips)
	assert.Equal(t, int64(189), stats.Points)
}

func TestCreateRecurringDefaultEndDate(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(10000)
	userID := uuid.New()
	cmds := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	result, err := cmds.CreateRecurring(context.Background(), userID, commands.CreateRecurringRequest{
		VehicleID: snap.ID,
		Frequency: "monthly",
		StartDate: date(2024, 8, 5),
	})
	require.NoError(t, err)

	// An omitted end date persists as start+365d, never the zero time.
	rental, ok := uow.state.rentals[result.RentalID]
	require.True(t, ok)
	assert.Equal(t, date(2025, 8, 5), rental.EndDate())
	assert.Equal(t, date(2024, 8, 5), rental.StartDate())
	require.Len(t, result.BookingIDs, 13)
	assert.Equal(t, rental.BookingIDs(), result.BookingIDs)
}

func TestCreateRecurringValidation(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(10000)
	cmds := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := cmds.CreateRecurring(context.Background(), uuid.New(), commands.CreateRecurringRequest{
			VehicleID: uuid.New(),
			Frequency: "weekly",
			StartDate: date(2024, 8, 5),
			EndDate:   date(2024, 8, 19),
		})
		assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})

	t.Run("bad frequency", func(t *testing.T) {
		_, err := cmds.CreateRecurring(context.Background(), uuid.New(), commands.CreateRecurringRequest{
			VehicleID: snap.ID,
			Frequency: "daily",
			StartDate: date(2024, 8, 5),
			EndDate:   date(2024, 8, 19),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidFrequency)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := cmds.CreateRecurring(context.Background(), uuid.New(), commands.CreateRecurringRequest{
			VehicleID: snap.ID,
			Frequency: "weekly",
			StartDate: date(2024, 8, 19),
			EndDate:   date(2024, 8, 5),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestPauseAndResumeRecurring(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(10000)
	userID := uuid.New()
	cmds := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 1)))

	result, err := cmds.CreateRecurring(context.Background(), userID, commands.CreateRecurringRequest{
		VehicleID: snap.ID,
		Frequency: "weekly",
		StartDate: date(2024, 8, 5),
		EndDate:   date(2024, 8, 19),
	})
	require.NoError(t, err)

	require.NoError(t, cmds.PauseRecurring(context.Background(), userID, result.RentalID))
	assert.Equal(t, recurring.StatusPaused, uow.state.rentals[result.RentalID].Status())

	err = cmds.PauseRecurring(context.Background(), userID, result.RentalID)
	assert.ErrorIs(t, err, errs.ErrRecurringNotActive)

	require.NoError(t, cmds.ResumeRecurring(context.Background(), userID, result.RentalID))
	assert.Equal(t, recurring.StatusActive, uow.state.rentals[result.RentalID].Status())

	err = cmds.ResumeRecurring(context.Background(), userID, result.RentalID)
	assert.ErrorIs(t, err, errs.ErrRecurringNotPaused)

	t.Run("ownership", func(t *testing.T) {
		err := cmds.PauseRecurring(context.Background(), uuid.New(), result.RentalID)
		assert.ErrorIs(t, err, commands.ErrRecurringNotOwned)
	})

	t.Run("unknown rental", func(t *testing.T) {
		err := cmds.PauseRecurring(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrRecurringNotFound)
	})
}

func TestCancelRecurring(t *testing.T) {
	uow := newFakeUoW()
	snap := uow.state.seedVehicleSnap(10000)
	userID := uuid.New()

	created := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 1)))
	result, err := created.CreateRecurring(context.Background(), userID, commands.CreateRecurringRequest{
		VehicleID: snap.ID,
		Frequency: "weekly",
		StartDate: date(2024, 8, 5),
		EndDate:   date(2024, 8, 19),
	})
	require.NoError(t, err)

	// By August 6 the first instance has started; only the two future
	// instances are cancellable.
	cmds := commands.NewRecurringCommands(uow, clock.NewMockClock(date(2024, 8, 6)))
	cancelResult, err := cmds.CancelRecurring(context.Background(), userID, result.RentalID)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelResult.CancelledInstances)

	assert.Equal(t, recurring.StatusCancelled, uow.state.rentals[result.RentalID].Status())

	statuses := make(map[booking.Status]int)
	for _, id := range result.BookingIDs {
		statuses[uow.state.bookings[id].Status()]++
	}
	assert.Equal(t, 1, statuses[booking.StatusActive])
	assert.Equal(t, 2, statuses[booking.StatusCancelled])

	stats := uow.state.statsFor(userID)
	assert.Equal(t, 1, stats.Trips)

	t.Run("cancelling again is rejected", func(t *testing.T) {
		_, err := cmds.CancelRecurring(context.Background(), userID, result.RentalID)
		assert.ErrorIs(t, err, errs.ErrRecurringNotActive)
	})
}
