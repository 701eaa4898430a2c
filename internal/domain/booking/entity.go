package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCompleted = errors.New("booking is already completed")
	ErrNotModifiable    = errors.New("only upcoming active or pending bookings can be modified")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	switch s {
	case StatusActive, StatusPending, StatusCompleted, StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether the status permits no further transitions.
// Late-fee and refund annotations are the only writes allowed afterwards.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) OccupiesVehicle() bool {
	return s == StatusActive || s == StatusPending
}

type ModificationRecord struct {
	ModifiedAt  time.Time
	OldPickup   time.Time
	OldReturn   time.Time
	OldLocation string
	OldTotal    Money
}

type CancellationRecord struct {
	CancelledAt   time.Time
	Reason        string
	Tier          RefundTier
	RefundAmount  Money
	OriginalTotal Money
}

type LateFeeRecord struct {
	DaysLate     int
	Fee          Money
	TotalWithFee Money
	CalculatedAt time.Time
}

type EarlyReturnRecord struct {
	ActualReturn time.Time
	DaysUsed     int
	Refund       Money
}

type Booking struct {
	id                uuid.UUID
	userID            uuid.UUID
	vehicleID         uuid.UUID
	vehicleName       string
	dates             DateRange
	location          string
	pricePerDay       Money
	days              int
	totalPrice        Money
	status            Status
	cartID            *uuid.UUID
	isRecurring       bool
	recurringParentID *uuid.UUID
	recurringType     string
	modifications     []ModificationRecord
	cancellation      *CancellationRecord
	lateFee           *LateFeeRecord
	earlyReturn       *EarlyReturnRecord
	actualReturn      *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewBooking creates an active booking priced at the full daily rate.
// cartID ties together bookings created by a single checkout batch.
func NewBooking(
	userID, vehicleID uuid.UUID,
	vehicleName string,
	dates DateRange,
	location string,
	pricePerDay Money,
	cartID *uuid.UUID,
) *Booking {
	days := dates.Days()
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		vehicleID:   vehicleID,
		vehicleName: vehicleName,
		dates:       dates,
		location:    location,
		pricePerDay: pricePerDay,
		days:        days,
		totalPrice:  Quote(days, pricePerDay, 1),
		status:      StatusActive,
		cartID:      cartID,
	}
}

// NewRecurringInstance creates one instance of a recurring rental plan.
// The recurring discount is applied to the instance total.
func NewRecurringInstance(
	userID, vehicleID uuid.UUID,
	vehicleName string,
	dates DateRange,
	location string,
	pricePerDay Money,
	parentID uuid.UUID,
	frequency string,
) *Booking {
	days := dates.Days()
	return &Booking{
		id:                uuid.New(),
		userID:            userID,
		vehicleID:         vehicleID,
		vehicleName:       vehicleName,
		dates:             dates,
		location:          location,
		pricePerDay:       pricePerDay,
		days:              days,
		totalPrice:        Quote(days, pricePerDay, RecurringDiscount),
		status:            StatusActive,
		isRecurring:       true,
		recurringParentID: &parentID,
		recurringType:     frequency,
	}
}

func ReconstructBooking(
	id, userID, vehicleID uuid.UUID,
	vehicleName string,
	dates DateRange,
	location string,
	pricePerDay Money,
	days int,
	totalPrice Money,
	status Status,
	cartID *uuid.UUID,
	isRecurring bool,
	recurringParentID *uuid.UUID,
	recurringType string,
	modifications []ModificationRecord,
	cancellation *CancellationRecord,
	lateFee *LateFeeRecord,
	earlyReturn *EarlyReturnRecord,
	actualReturn *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		userID:            userID,
		vehicleID:         vehicleID,
		vehicleName:       vehicleName,
		dates:             dates,
		location:          location,
		pricePerDay:       pricePerDay,
		days:              days,
		totalPrice:        totalPrice,
		status:            status,
		cartID:            cartID,
		isRecurring:       isRecurring,
		recurringParentID: recurringParentID,
		recurringType:     recurringType,
		modifications:     modifications,
		cancellation:      cancellation,
		lateFee:           lateFee,
		earlyReturn:       earlyReturn,
		actualReturn:      actualReturn,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Cancel moves the booking to cancelled and records the refund computed by
// CancellationRefund. Cancelling twice is rejected without touching state.
func (b *Booking) Cancel(quote RefundQuote, reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status == StatusCompleted {
		return ErrAlreadyCompleted
	}

	b.status = StatusCancelled
	b.cancellation = &CancellationRecord{
		CancelledAt:   now,
		Reason:        reason,
		Tier:          quote.Tier,
		RefundAmount:  quote.RefundAmount,
		OriginalTotal: b.totalPrice,
	}
	b.updatedAt = now
	return nil
}

// CompleteEarlyReturn finishes the rental at the quoted early return date.
func (b *Booking) CompleteEarlyReturn(quote EarlyReturnQuote, now time.Time) error {
	if b.status != StatusActive {
		return ErrNotActive
	}

	b.status = StatusCompleted
	actual := quote.ActualReturn
	b.actualReturn = &actual
	b.earlyReturn = &EarlyReturnRecord{
		ActualReturn: quote.ActualReturn,
		DaysUsed:     quote.DaysUsed,
		Refund:       quote.Refund,
	}
	b.updatedAt = now
	return nil
}

// ApplyLateFee annotates an overdue active booking with the current fee.
// The record is overwritten on every evaluation.
func (b *Booking) ApplyLateFee(quote LateFeeQuote, now time.Time) error {
	if b.status != StatusActive {
		return ErrNotActive
	}

	b.lateFee = &LateFeeRecord{
		DaysLate:     quote.DaysLate,
		Fee:          quote.Fee,
		TotalWithFee: quote.TotalWithFee,
		CalculatedAt: now,
	}
	b.updatedAt = now
	return nil
}

// CompleteLateReturn finishes an overdue rental, fixing the final fee at
// the moment of return.
func (b *Booking) CompleteLateReturn(quote LateFeeQuote, actualReturn, now time.Time) error {
	if b.status != StatusActive {
		return ErrNotActive
	}

	b.status = StatusCompleted
	actual := Day(actualReturn)
	b.actualReturn = &actual
	b.lateFee = &LateFeeRecord{
		DaysLate:     quote.DaysLate,
		Fee:          quote.Fee,
		TotalWithFee: quote.TotalWithFee,
		CalculatedAt: now,
	}
	b.updatedAt = now
	return nil
}

// Reschedule moves an upcoming booking to new dates, re-pricing at the
// original daily rate and keeping an audit trail of the previous terms.
func (b *Booking) Reschedule(newDates DateRange, newLocation string, today, now time.Time) error {
	if !b.status.OccupiesVehicle() {
		return ErrNotModifiable
	}
	if !b.dates.Pickup().After(Day(today)) {
		return ErrNotModifiable
	}

	b.modifications = append(b.modifications, ModificationRecord{
		ModifiedAt:  now,
		OldPickup:   b.dates.Pickup(),
		OldReturn:   b.dates.Return(),
		OldLocation: b.location,
		OldTotal:    b.totalPrice,
	})

	b.dates = newDates
	b.location = newLocation
	b.days = newDates.Days()
	b.totalPrice = Quote(b.days, b.pricePerDay, 1)
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) IsOverdue(today time.Time) bool {
	return b.status == StatusActive && b.dates.Return().Before(Day(today))
}

func (b *Booking) ID() uuid.UUID                        { return b.id }
func (b *Booking) UserID() uuid.UUID                    { return b.userID }
func (b *Booking) VehicleID() uuid.UUID                 { return b.vehicleID }
func (b *Booking) VehicleName() string                  { return b.vehicleName }
func (b *Booking) Dates() DateRange                     { return b.dates }
func (b *Booking) Location() string                     { return b.location }
func (b *Booking) PricePerDay() Money                   { return b.pricePerDay }
func (b *Booking) Days() int                            { return b.days }
func (b *Booking) TotalPrice() Money                    { return b.totalPrice }
func (b *Booking) Status() Status                       { return b.status }
func (b *Booking) CartID() *uuid.UUID                   { return b.cartID }
func (b *Booking) IsRecurring() bool                    { return b.isRecurring }
func (b *Booking) RecurringParentID() *uuid.UUID        { return b.recurringParentID }
func (b *Booking) RecurringType() string                { return b.recurringType }
func (b *Booking) Modifications() []ModificationRecord  { return b.modifications }
func (b *Booking) Cancellation() *CancellationRecord    { return b.cancellation }
func (b *Booking) LateFeeRecord() *LateFeeRecord        { return b.lateFee }
func (b *Booking) EarlyReturnRecord() *EarlyReturnRecord { return b.earlyReturn }
func (b *Booking) ActualReturn() *time.Time             { return b.actualReturn }
func (b *Booking) CreatedAt() time.Time                 { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time                 { return b.updatedAt }
