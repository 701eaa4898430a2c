package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VehicleView struct {
	ID            uuid.UUID `json:"id"`
	AgentID       uuid.UUID `json:"agent_id"`
	Name          string    `json:"name"`
	VehicleType   string    `json:"vehicle_type"`
	PriceCents    int64     `json:"price_cents"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	VehicleID         uuid.UUID  `json:"vehicle_id"`
	VehicleName       string     `json:"vehicle_name"`
	PickupDate        time.Time  `json:"pickup_date"`
	ReturnDate        time.Time  `json:"return_date"`
	Location          string     `json:"location"`
	PricePerDayCents  int64      `json:"price_per_day_cents"`
	Days              int        `json:"days"`
	TotalPriceCents   int64      `json:"total_price_cents"`
	Status            string     `json:"status"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurringType     *string    `json:"recurring_type,omitempty"`
	RefundTier        *string    `json:"refund_tier,omitempty"`
	RefundCents       *int64     `json:"refund_cents,omitempty"`
	LateFeeCents      *int64     `json:"late_fee_cents,omitempty"`
	DaysLate          *int       `json:"days_late,omitempty"`
	ActualReturn      *time.Time `json:"actual_return,omitempty"`
	ModificationCount int        `json:"modification_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	PickupDate      time.Time `json:"pickup_date"`
	ReturnDate      time.Time `json:"return_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type CartItemView struct {
	ID               uuid.UUID `json:"id"`
	VehicleID        uuid.UUID `json:"vehicle_id"`
	VehicleName      string    `json:"vehicle_name"`
	VehicleType      string    `json:"vehicle_type"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	PickupDate       time.Time `json:"pickup_date"`
	ReturnDate       time.Time `json:"return_date"`
	Location         string    `json:"location"`
	Duration         int       `json:"duration"`
	TotalCents       int64     `json:"total_cents"`
}

type CartView struct {
	Items         []CartItemView `json:"items"`
	SubtotalCents int64          `json:"subtotal_cents"`
	TaxCents      int64          `json:"tax_cents"`
	TotalCents    int64          `json:"total_cents"`
}

type RecurringRentalView struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"user_id"`
	VehicleID        uuid.UUID   `json:"vehicle_id"`
	Frequency        string      `json:"frequency"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Location         string      `json:"location"`
	PricePerDayCents int64       `json:"price_per_day_cents"`
	Status           string      `json:"status"`
	BookingIDs       []uuid.UUID `json:"booking_ids"`
	CreatedAt        time.Time   `json:"created_at"`
}

type WaitlistEntryView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	UserType      string     `json:"user_type"`
	TotalTrips    int        `json:"total_trips"`
	LoyaltyPoints int64      `json:"loyalty_points"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

type CalendarDayView struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}
