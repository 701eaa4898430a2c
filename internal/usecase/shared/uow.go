package shared

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/cart"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/domain/review"
	"rentwheels/internal/domain/user"
	"rentwheels/internal/domain/vehicle"
	"rentwheels/internal/domain/waitlist"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes the write repositories bound to one transaction. All
// writes made through it commit or roll back together.
type Tx interface {
	Bookings() BookingRepository
	Carts() CartRepository
	Recurring() RecurringRepository
	Waitlist() WaitlistRepository
	Reviews() ReviewRepository
	Vehicles() VehicleRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// OccupiedRanges returns the date ranges of reservations that still
	// occupy the vehicle (active or pending).
	OccupiedRanges(ctx context.Context, vehicleID uuid.UUID) ([]booking.DateRange, error)
	HasOccupyingBookings(ctx context.Context, vehicleID uuid.UUID) (bool, error)
}

// Minimal snapshots for command-side validation
type VehicleSnapshot struct {
	ID          uuid.UUID
	AgentID     uuid.UUID
	Name        string
	VehicleType string
	PriceCents  int64
	Status      string
	Location    string
}

type BookingSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	VehicleID  uuid.UUID
	Status     string
	PickupDate time.Time
	ReturnDate time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	FindUpcomingByRecurringParent(ctx context.Context, parentID uuid.UUID, from time.Time) ([]*booking.Booking, error)
	FindOverdue(ctx context.Context, asOf time.Time) ([]*booking.Booking, error)
}

type CartRepository interface {
	AddItem(ctx context.Context, userID uuid.UUID, item *cart.Item) (uuid.UUID, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type RecurringRepository interface {
	Create(ctx context.Context, r *recurring.Rental) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*recurring.Rental, error)
	UpdateStatus(ctx context.Context, r *recurring.Rental) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, e *waitlist.Entry) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*waitlist.Entry, error)
	FindAllActive(ctx context.Context) ([]*waitlist.Entry, error)
	ExistsActive(ctx context.Context, userID, vehicleID uuid.UUID, pickupDate time.Time) (bool, error)
	UpdateStatus(ctx context.Context, e *waitlist.Entry) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	Update(ctx context.Context, v *vehicle.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	// ApplyTripStats adjusts totalTrips and loyaltyPoints in one write.
	// Deltas may be negative (cancellation) or positive (checkout).
	ApplyTripStats(ctx context.Context, userID uuid.UUID, tripsDelta int, pointsDelta int64) error
}
