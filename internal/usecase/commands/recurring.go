package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"
)

var ErrRecurringNotOwned = errs.New("recurring rental not owned by user")

type CreateRecurringRequest struct {
	VehicleID uuid.UUID
	Frequency string
	StartDate time.Time
	// EndDate is optional; zero means one year from the start.
	EndDate time.Time
}

type CreateRecurringResult struct {
	RentalID        uuid.UUID
	BookingIDs      []uuid.UUID
	TotalPriceCents int64
	PointsEarned    int64
}

type CancelRecurringResult struct {
	CancelledInstances int
}

type RecurringCommands interface {
	// CreateRecurring persists the plan and every generated instance as
	// one batch; counters are credited once for the aggregate.
	CreateRecurring(ctx context.Context, userID uuid.UUID, req CreateRecurringRequest) (*CreateRecurringResult, error)
	PauseRecurring(ctx context.Context, userID, rentalID uuid.UUID) error
	ResumeRecurring(ctx context.Context, userID, rentalID uuid.UUID) error
	// CancelRecurring cancels the plan and only those instances whose
	// pickup is still in the future.
	CancelRecurring(ctx context.Context, userID, rentalID uuid.UUID) (*CancelRecurringResult, error)
}

type recurringCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRecurringCommands(uow shared.UnitOfWork, clk clock.Clock) RecurringCommands {
	return &recurringCommandsImpl{uow: uow, clock: clk}
}

func (c *recurringCommandsImpl) CreateRecurring(ctx context.Context, userID uuid.UUID, req CreateRecurringRequest) (*CreateRecurringResult, error) {
	frequency, err := recurring.NewFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}

	windows, err := recurring.Expand(frequency, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var result *CreateRecurringResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrVehicleNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		rate := booking.NewMoney(snap.PriceCents)

		// NewRental applies the one-year default when the end date is
		// omitted, so the persisted plan never carries a zero end date.
		rental := recurring.NewRental(
			userID, snap.ID,
			frequency,
			req.StartDate, req.EndDate,
			snap.Location,
			rate,
			nil,
			c.clock.Now(),
		)

		bookingIDs := make([]uuid.UUID, 0, len(windows))
		total := booking.NewMoney(0)
		for _, window := range windows {
			instance := booking.NewRecurringInstance(userID, snap.ID, snap.Name, window, snap.Location, rate, rental.ID(), string(frequency))
			id, createErr := tx.Bookings().Create(ctx, instance)
			if createErr != nil {
				return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
			}
			bookingIDs = append(bookingIDs, id)
			total = total.Add(instance.TotalPrice())
		}

		rental.AttachBookings(bookingIDs)
		if _, createErr := tx.Recurring().Create(ctx, rental); createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}

		points := booking.LoyaltyPoints(total)
		if statsErr := tx.Users().ApplyTripStats(ctx, userID, len(bookingIDs), points); statsErr != nil {
			return errs.Mark(statsErr, errs.ErrDatabaseOperationFailed)
		}

		result = &CreateRecurringResult{
			RentalID:        rental.ID(),
			BookingIDs:      bookingIDs,
			TotalPriceCents: total.Cents(),
			PointsEarned:    points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *recurringCommandsImpl) PauseRecurring(ctx context.Context, userID, rentalID uuid.UUID) error {
	return c.transition(ctx, userID, rentalID, (*recurring.Rental).Pause)
}

func (c *recurringCommandsImpl) ResumeRecurring(ctx context.Context, userID, rentalID uuid.UUID) error {
	return c.transition(ctx, userID, rentalID, (*recurring.Rental).Resume)
}

func (c *recurringCommandsImpl) transition(ctx context.Context, userID, rentalID uuid.UUID, op func(*recurring.Rental) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rental, err := c.loadOwned(ctx, tx, userID, rentalID)
		if err != nil {
			return err
		}
		if err := op(rental); err != nil {
			return err
		}
		if err := tx.Recurring().UpdateStatus(ctx, rental); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *recurringCommandsImpl) CancelRecurring(ctx context.Context, userID, rentalID uuid.UUID) (*CancelRecurringResult, error) {
	var result *CancelRecurringResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rental, err := c.loadOwned(ctx, tx, userID, rentalID)
		if err != nil {
			return err
		}
		if err := rental.Cancel(); err != nil {
			return err
		}
		if err := tx.Recurring().UpdateStatus(ctx, rental); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		today := clock.Today(c.clock)
		upcoming, err := tx.Bookings().FindUpcomingByRecurringParent(ctx, rentalID, today)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		cancelled := 0
		now := c.clock.Now()
		for _, b := range upcoming {
			quote := booking.CancellationRefund(b.TotalPrice(), b.Dates().Pickup(), today)
			if cancelErr := b.Cancel(quote, "recurring rental cancelled", now); cancelErr != nil {
				continue
			}
			if updateErr := tx.Bookings().Update(ctx, b); updateErr != nil {
				return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
			}
			cancelled++
		}

		if cancelled > 0 {
			if statsErr := tx.Users().ApplyTripStats(ctx, userID, -cancelled, 0); statsErr != nil {
				return errs.Mark(statsErr, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CancelRecurringResult{CancelledInstances: cancelled}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *recurringCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, userID, rentalID uuid.UUID) (*recurring.Rental, error) {
	rental, err := tx.Recurring().FindByID(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRecurringNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rental.UserID() != userID {
		return nil, ErrRecurringNotOwned
	}
	return rental, nil
}
