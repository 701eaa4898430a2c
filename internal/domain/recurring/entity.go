package recurring

import (
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/pkg/errs"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusPaused, StatusCancelled:
		return Status(s), nil
	default:
		return "", errs.Mark(errs.New("invalid recurring rental status"), errs.ErrDomainValidation)
	}
}

// Rental is the parent record of a recurring plan. It owns the ids of
// the reservations generated from it; the reservations themselves live
// in the booking aggregate.
type Rental struct {
	id          uuid.UUID
	userID      uuid.UUID
	vehicleID   uuid.UUID
	frequency   Frequency
	startDate   time.Time
	endDate     time.Time
	location    string
	pricePerDay booking.Money
	status      Status
	bookingIDs  []uuid.UUID
	createdAt   time.Time
}

func NewRental(
	userID, vehicleID uuid.UUID,
	frequency Frequency,
	startDate, endDate time.Time,
	location string,
	pricePerDay booking.Money,
	bookingIDs []uuid.UUID,
	now time.Time,
) *Rental {
	start := booking.Day(startDate)
	end := booking.Day(endDate)
	if endDate.IsZero() {
		end = start.AddDate(0, 0, defaultPlanDays)
	}
	return &Rental{
		id:          uuid.New(),
		userID:      userID,
		vehicleID:   vehicleID,
		frequency:   frequency,
		startDate:   start,
		endDate:     end,
		location:    location,
		pricePerDay: pricePerDay,
		status:      StatusActive,
		bookingIDs:  bookingIDs,
		createdAt:   now,
	}
}

func ReconstructRental(
	id, userID, vehicleID uuid.UUID,
	frequency Frequency,
	startDate, endDate time.Time,
	location string,
	pricePerDay booking.Money,
	status Status,
	bookingIDs []uuid.UUID,
	createdAt time.Time,
) *Rental {
	return &Rental{
		id:          id,
		userID:      userID,
		vehicleID:   vehicleID,
		frequency:   frequency,
		startDate:   startDate,
		endDate:     endDate,
		location:    location,
		pricePerDay: pricePerDay,
		status:      status,
		bookingIDs:  bookingIDs,
		createdAt:   createdAt,
	}
}

// AttachBookings records the instances generated for this plan.
func (r *Rental) AttachBookings(ids []uuid.UUID) {
	r.bookingIDs = ids
}

func (r *Rental) Pause() error {
	if r.status != StatusActive {
		return errs.Mark(errs.New("only an active plan can be paused"), errs.ErrRecurringNotActive)
	}
	r.status = StatusPaused
	return nil
}

func (r *Rental) Resume() error {
	if r.status != StatusPaused {
		return errs.Mark(errs.New("only a paused plan can be resumed"), errs.ErrRecurringNotPaused)
	}
	r.status = StatusActive
	return nil
}

func (r *Rental) Cancel() error {
	if r.status == StatusCancelled {
		return errs.Mark(errs.New("plan already cancelled"), errs.ErrRecurringNotActive)
	}
	r.status = StatusCancelled
	return nil
}

func (r *Rental) ID() uuid.UUID              { return r.id }
func (r *Rental) UserID() uuid.UUID          { return r.userID }
func (r *Rental) VehicleID() uuid.UUID       { return r.vehicleID }
func (r *Rental) Frequency() Frequency       { return r.frequency }
func (r *Rental) StartDate() time.Time       { return r.startDate }
func (r *Rental) EndDate() time.Time         { return r.endDate }
func (r *Rental) Location() string           { return r.location }
func (r *Rental) PricePerDay() booking.Money { return r.pricePerDay }
func (r *Rental) Status() Status             { return r.status }
func (r *Rental) BookingIDs() []uuid.UUID    { return r.bookingIDs }
func (r *Rental) CreatedAt() time.Time       { return r.createdAt }
