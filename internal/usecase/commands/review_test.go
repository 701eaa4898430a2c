//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/shared"
)

func seedBookingSnap(uow *fakeUoW, userID uuid.UUID, status string) *shared.BookingSnapshot {
	snap := &shared.BookingSnapshot{
		ID:         uuid.New(),
		UserID:     userID,
		VehicleID:  uuid.New(),
		Status:     status,
		PickupDate: date(2024, 7, 1),
		ReturnDate: date(2024, 7, 5),
	}
	uow.state.bookingSnaps[snap.ID] = snap
	return snap
}

func TestCreateReview(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	snap := seedBookingSnap(uow, userID, "completed")
	cmds := commands.NewReviewCommands(uow, clock.NewMockClock(date(2024, 7, 10)))

	result, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
		BookingID: snap.ID,
		Rating:    4,
		Text:      "Clean car, smooth pickup.",
	})
	require.NoError(t, err)

	stored, ok := uow.state.reviews[result.ReviewID]
	require.True(t, ok)
	assert.Equal(t, snap.ID, stored.BookingID())
	assert.Equal(t, snap.VehicleID, stored.VehicleID())
	assert.Equal(t, 4, stored.Rating().Int())
	assert.Equal(t, "Clean car, smooth pickup.", stored.Text())

	t.Run("one review per booking", func(t *testing.T) {
		_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
			BookingID: snap.ID,
			Rating:    5,
			Text:      "Second attempt.",
		})
		assert.ErrorIs(t, err, errs.ErrBookingNotReviewable)
	})
}

func TestCreateReviewEligibility(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	cmds := commands.NewReviewCommands(uow, clock.NewMockClock(date(2024, 7, 10)))

	t.Run("unknown booking", func(t *testing.T) {
		_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
			BookingID: uuid.New(),
			Rating:    4,
			Text:      "Nice.",
		})
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("booking of another user", func(t *testing.T) {
		snap := seedBookingSnap(uow, uuid.New(), "completed")
		_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
			BookingID: snap.ID,
			Rating:    4,
			Text:      "Nice.",
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
	})

	t.Run("rental still running", func(t *testing.T) {
		snap := seedBookingSnap(uow, userID, "active")
		_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
			BookingID: snap.ID,
			Rating:    4,
			Text:      "Nice.",
		})
		assert.ErrorIs(t, err, errs.ErrBookingNotReviewable)
	})

	t.Run("cancelled rental", func(t *testing.T) {
		snap := seedBookingSnap(uow, userID, "cancelled")
		_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
			BookingID: snap.ID,
			Rating:    4,
			Text:      "Nice.",
		})
		assert.ErrorIs(t, err, errs.ErrBookingNotReviewable)
	})

	t.Run("rating out of range", func(t *testing.T) {
		snap := seedBookingSnap(uow, userID, "completed")
		for _, rating := range []int{0, 6} {
			_, err := cmds.CreateReview(context.Background(), userID, commands.CreateReviewRequest{
				BookingID: snap.ID,
				Rating:    rating,
				Text:      "Nice.",
			})
			assert.ErrorIs(t, err, errs.ErrDomainValidation)
		}
	})
}
