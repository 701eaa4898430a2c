package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"
)

var ErrBookingNotOwned = errs.New("booking not owned by user")

type CancelBookingRequest struct {
	Reason string
}

type CancelBookingResult struct {
	Tier          string
	RefundPercent float64
	RefundCents   int64
}

type ModifyBookingRequest struct {
	PickupDate time.Time
	ReturnDate time.Time
	Location   string
}

type EarlyReturnResult struct {
	DaysUsed    int
	RefundCents int64
}

type LateReturnResult struct {
	DaysLate          int
	LateFeeCents      int64
	TotalWithFeeCents int64
}

type BookingCommands interface {
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, req CancelBookingRequest) (*CancelBookingResult, error)
	ModifyBooking(ctx context.Context, userID, bookingID uuid.UUID, req ModifyBookingRequest) error
	EarlyReturn(ctx context.Context, userID, bookingID uuid.UUID, actualReturn time.Time) (*EarlyReturnResult, error)
	LateReturn(ctx context.Context, userID, bookingID uuid.UUID) (*LateReturnResult, error)
	// RefreshLateFees reprices the surcharge on every overdue booking.
	// Running it twice on the same day is a no-op for already-priced fees.
	RefreshLateFees(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, req CancelBookingRequest) (*CancelBookingResult, error) {
	var result *CancelBookingResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwned(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}

		quote := booking.CancellationRefund(b.TotalPrice(), b.Dates().Pickup(), clock.Today(c.clock))
		if err := b.Cancel(quote, req.Reason, c.clock.Now()); err != nil {
			return mapBookingStateErr(err)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Users().ApplyTripStats(ctx, userID, -1, 0); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &CancelBookingResult{
			Tier:          string(quote.Tier),
			RefundPercent: quote.RefundPercent,
			RefundCents:   quote.RefundAmount.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) ModifyBooking(ctx context.Context, userID, bookingID uuid.UUID, req ModifyBookingRequest) error {
	newDates, err := booking.NewDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidDateRange)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwned(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}

		if err := b.Reschedule(newDates, req.Location, clock.Today(c.clock), c.clock.Now()); err != nil {
			return mapBookingStateErr(err)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) EarlyReturn(ctx context.Context, userID, bookingID uuid.UUID, actualReturn time.Time) (*EarlyReturnResult, error) {
	var result *EarlyReturnResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwned(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}

		quote, quoteErr := b.QuoteEarlyReturn(actualReturn, clock.Today(c.clock))
		if quoteErr != nil {
			return mapBookingStateErr(quoteErr)
		}
		if err := b.CompleteEarlyReturn(quote, c.clock.Now()); err != nil {
			return mapBookingStateErr(err)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &EarlyReturnResult{
			DaysUsed:    quote.DaysUsed,
			RefundCents: quote.Refund.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) LateReturn(ctx context.Context, userID, bookingID uuid.UUID) (*LateReturnResult, error) {
	var result *LateReturnResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwned(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}

		today := clock.Today(c.clock)
		quote, overdue := b.QuoteLateFee(today)
		if !overdue {
			return errs.Mark(booking.ErrNotActive, errs.ErrBookingNotActive)
		}
		if err := b.CompleteLateReturn(quote, today, c.clock.Now()); err != nil {
			return mapBookingStateErr(err)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &LateReturnResult{
			DaysLate:          quote.DaysLate,
			LateFeeCents:      quote.Fee.Cents(),
			TotalWithFeeCents: quote.TotalWithFee.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *bookingCommandsImpl) RefreshLateFees(ctx context.Context) (int, error) {
	today := clock.Today(c.clock)
	updated := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overdue, err := tx.Bookings().FindOverdue(ctx, today)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, b := range overdue {
			quote, ok := b.QuoteLateFee(today)
			if !ok {
				continue
			}
			if err := b.ApplyLateFee(quote, c.clock.Now()); err != nil {
				slog.Warn("skipping late fee", "booking_id", b.ID(), "error", err.Error())
				continue
			}
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (c *bookingCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, userID, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.UserID() != userID {
		return nil, ErrBookingNotOwned
	}
	return b, nil
}

func mapBookingStateErr(err error) error {
	switch err {
	case booking.ErrAlreadyCancelled:
		return errs.ErrBookingAlreadyCanceled
	case booking.ErrAlreadyCompleted, booking.ErrNotActive:
		return errs.ErrBookingNotActive
	case booking.ErrNotModifiable:
		return errs.Mark(err, errs.ErrBookingNotActive)
	case booking.ErrNotStarted, booking.ErrReturnOutOfWindow, booking.ErrInvalidDateRange:
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
