package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/waitlist"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"
)

var ErrWaitlistEntryNotOwned = errs.New("waiting list entry not owned by user")

type JoinWaitlistRequest struct {
	VehicleID  uuid.UUID
	PickupDate time.Time
	ReturnDate time.Time
}

type WaitlistCheckResult struct {
	Checked  int
	Notified int
}

type WaitlistCommands interface {
	Join(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (uuid.UUID, error)
	Remove(ctx context.Context, userID, entryID uuid.UUID) error
	// CheckAndNotify flips entries whose desired range has become free
	// to notified and emits one notification per match.
	CheckAndNotify(ctx context.Context, userID uuid.UUID) (*WaitlistCheckResult, error)
	// CheckAndNotifyAll runs the same sweep across every active entry.
	CheckAndNotifyAll(ctx context.Context) (*WaitlistCheckResult, error)
}

type waitlistCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier AvailabilityNotifier
	clock    clock.Clock
}

func NewWaitlistCommands(uow shared.UnitOfWork, notifier AvailabilityNotifier, clk clock.Clock) WaitlistCommands {
	return &waitlistCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (c *waitlistCommandsImpl) Join(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (uuid.UUID, error) {
	desired, err := booking.NewDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	var entryID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().VehicleByID(ctx, req.VehicleID); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrVehicleNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		exists, existsErr := tx.Waitlist().ExistsActive(ctx, userID, req.VehicleID, desired.Pickup())
		if existsErr != nil {
			return errs.Mark(existsErr, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.ErrDuplicateWaitlistEntry
		}

		entry := waitlist.NewEntry(userID, req.VehicleID, desired, c.clock.Now())
		id, createErr := tx.Waitlist().Create(ctx, entry)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		entryID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

func (c *waitlistCommandsImpl) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Waitlist().FindByID(ctx, entryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrWaitlistEntryNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if entry.UserID() != userID {
			return ErrWaitlistEntryNotOwned
		}

		if err := entry.Remove(); err != nil {
			return err
		}
		if err := tx.Waitlist().UpdateStatus(ctx, entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *waitlistCommandsImpl) CheckAndNotify(ctx context.Context, userID uuid.UUID) (*WaitlistCheckResult, error) {
	return c.sweep(ctx, func(ctx context.Context, tx shared.Tx) ([]*waitlist.Entry, error) {
		return tx.Waitlist().FindActiveByUser(ctx, userID)
	})
}

func (c *waitlistCommandsImpl) CheckAndNotifyAll(ctx context.Context) (*WaitlistCheckResult, error) {
	return c.sweep(ctx, func(ctx context.Context, tx shared.Tx) ([]*waitlist.Entry, error) {
		return tx.Waitlist().FindAllActive(ctx)
	})
}

func (c *waitlistCommandsImpl) sweep(ctx context.Context, load func(ctx context.Context, tx shared.Tx) ([]*waitlist.Entry, error)) (*WaitlistCheckResult, error) {
	var result *WaitlistCheckResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := load(ctx, tx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		occupied := make(map[uuid.UUID][]booking.DateRange)
		for _, e := range entries {
			if _, ok := occupied[e.VehicleID()]; ok {
				continue
			}
			ranges, rangesErr := tx.Reads().OccupiedRanges(ctx, e.VehicleID())
			if rangesErr != nil {
				return errs.Mark(rangesErr, errs.ErrDatabaseOperationFailed)
			}
			occupied[e.VehicleID()] = ranges
		}

		matches := waitlist.FindMatches(entries, occupied, c.clock.Now())
		for _, m := range matches {
			if markErr := m.Entry.MarkNotified(); markErr != nil {
				continue
			}
			if updateErr := tx.Waitlist().UpdateStatus(ctx, m.Entry); updateErr != nil {
				return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &WaitlistCheckResult{Checked: len(entries), Notified: len(matches)}

		// Notifications go out only after the status flips are durable.
		for _, m := range matches {
			view := entryView(m.Entry)
			if notifyErr := c.notifier.VehicleAvailable(ctx, view); notifyErr != nil {
				slog.Warn("waitlist notification failed", "entry_id", m.Entry.ID(), "error", notifyErr.Error())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func entryView(e *waitlist.Entry) *queries.WaitlistEntryView {
	return &queries.WaitlistEntryView{
		ID:         e.ID(),
		UserID:     e.UserID(),
		VehicleID:  e.VehicleID(),
		PickupDate: e.Desired().Pickup(),
		ReturnDate: e.Desired().Return(),
		Status:     string(e.Status()),
		ExpiresAt:  e.ExpiresAt(),
		CreatedAt:  e.CreatedAt(),
	}
}
