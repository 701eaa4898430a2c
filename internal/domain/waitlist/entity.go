package waitlist

import (
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusNotified Status = "notified"
	StatusRemoved  Status = "removed"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusNotified, StatusRemoved:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.New("invalid waiting list status"), errs.ErrDomainValidation)
	}
}

// expiryDays is advisory; expired entries are skipped by the matcher
// but never purged automatically.
const expiryDays = 30

// Entry is a standing request for a vehicle over a date range, waiting
// for the conflicting reservations to clear.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	vehicleID uuid.UUID
	desired   booking.DateRange
	status    Status
	createdAt time.Time
	expiresAt time.Time
}

func NewEntry(userID, vehicleID uuid.UUID, desired booking.DateRange, now time.Time) *Entry {
	return &Entry{
		id:        uuid.New(),
		userID:    userID,
		vehicleID: vehicleID,
		desired:   desired,
		status:    StatusActive,
		createdAt: now,
		expiresAt: now.AddDate(0, 0, expiryDays),
	}
}

func ReconstructEntry(
	id, userID, vehicleID uuid.UUID,
	desired booking.DateRange,
	status Status,
	createdAt, expiresAt time.Time,
) *Entry {
	return &Entry{
		id:        id,
		userID:    userID,
		vehicleID: vehicleID,
		desired:   desired,
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

// Conflicts reports whether another entry duplicates this one. Dedup is
// on user, vehicle and pickup date for active entries only.
func (e *Entry) Conflicts(userID, vehicleID uuid.UUID, pickup time.Time) bool {
	return e.status == StatusActive &&
		e.userID == userID &&
		e.vehicleID == vehicleID &&
		e.desired.Pickup().Equal(booking.Day(pickup))
}

func (e *Entry) MarkNotified() error {
	if e.status != StatusActive {
		return errs.Mark(errs.New("only an active entry can be notified"), errs.ErrDomainValidation)
	}
	e.status = StatusNotified
	return nil
}

func (e *Entry) Remove() error {
	if e.status == StatusRemoved {
		return errs.Mark(errs.New("entry already removed"), errs.ErrWaitlistEntryNotFound)
	}
	e.status = StatusRemoved
	return nil
}

func (e *Entry) IsExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

func (e *Entry) ID() uuid.UUID              { return e.id }
func (e *Entry) UserID() uuid.UUID          { return e.userID }
func (e *Entry) VehicleID() uuid.UUID       { return e.vehicleID }
func (e *Entry) Desired() booking.DateRange { return e.desired }
func (e *Entry) Status() Status             { return e.status }
func (e *Entry) CreatedAt() time.Time       { return e.createdAt }
func (e *Entry) ExpiresAt() time.Time       { return e.expiresAt }
