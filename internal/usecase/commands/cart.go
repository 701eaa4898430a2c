package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/cart"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"
)

type AddCartItemRequest struct {
	VehicleID  uuid.UUID
	PickupDate time.Time
	ReturnDate time.Time
}

type CheckoutResult struct {
	BookingIDs    []uuid.UUID
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	PointsEarned  int64
}

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, req AddCartItemRequest) (uuid.UUID, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	// Checkout converts every cart item into a reservation in one
	// transaction and credits trip and loyalty counters exactly once.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, req AddCartItemRequest) (uuid.UUID, error) {
	dates, err := booking.NewDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	var itemID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrVehicleNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		current, loadErr := tx.Carts().FindByUser(ctx, userID)
		if loadErr != nil {
			return errs.Mark(loadErr, errs.ErrDatabaseOperationFailed)
		}

		item := cart.NewItem(snap.ID, snap.Name, snap.VehicleType, booking.NewMoney(snap.PriceCents), dates, snap.Location)
		if addErr := current.AddItem(item); addErr != nil {
			return errs.Mark(addErr, errs.ErrDuplicateCartItem)
		}

		id, addErr := tx.Carts().AddItem(ctx, userID, item)
		if addErr != nil {
			return errs.Mark(addErr, errs.ErrDatabaseOperationFailed)
		}
		itemID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().RemoveItem(ctx, userID, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCartItemNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	var result *CheckoutResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Carts().FindByUser(ctx, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if current.IsEmpty() {
			return errs.ErrCartEmpty
		}

		batchID := uuid.New()
		bookingIDs := make([]uuid.UUID, 0, current.Size())
		for _, item := range current.Items() {
			b := booking.NewBooking(userID, item.VehicleID(), item.VehicleName(), item.Dates(), item.Location(), item.PricePerDay(), &batchID)
			id, createErr := tx.Bookings().Create(ctx, b)
			if createErr != nil {
				return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
			}
			bookingIDs = append(bookingIDs, id)
		}

		total := current.Total()
		points := booking.LoyaltyPoints(total)
		if err := tx.Users().ApplyTripStats(ctx, userID, current.Size(), points); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Carts().Clear(ctx, userID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &CheckoutResult{
			BookingIDs:    bookingIDs,
			SubtotalCents: current.Subtotal().Cents(),
			TaxCents:      current.Tax().Cents(),
			TotalCents:    total.Cents(),
			PointsEarned:  points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
