package response

import (
	"time"

	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
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

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TaxCents      int64              `json:"tax_cents"`
	TotalCents    int64              `json:"total_cents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	resp := &CartResponse{Items: []CartItemResponse{}}
	_ = copier.Copy(resp, v)
	return resp
}

type CheckoutResponse struct {
	BookingIDs    []uuid.UUID `json:"booking_ids"`
	SubtotalCents int64       `json:"subtotal_cents"`
	TaxCents      int64       `json:"tax_cents"`
	TotalCents    int64       `json:"total_cents"`
	PointsEarned  int64       `json:"points_earned"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		BookingIDs:    r.BookingIDs,
		SubtotalCents: r.SubtotalCents,
		TaxCents:      r.TaxCents,
		TotalCents:    r.TotalCents,
		PointsEarned:  r.PointsEarned,
	}
}
