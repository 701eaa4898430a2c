package commands

import (
	"context"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/review"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Text      string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, userID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}

	var result *CreateReviewResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().BookingByID(ctx, req.BookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}
		if snap.UserID != userID {
			return ErrBookingNotOwned
		}
		if snap.Status != string(booking.StatusCompleted) {
			return errs.ErrBookingNotReviewable
		}

		entity, newErr := review.NewReview(userID, snap.ID, snap.VehicleID, rating, req.Text, c.clock.Now())
		if newErr != nil {
			return newErr
		}

		id, createErr := tx.Reviews().Create(ctx, entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.ErrBookingNotReviewable
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}

		result = &CreateReviewResult{ReviewID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
