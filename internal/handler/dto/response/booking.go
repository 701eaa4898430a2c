package response

import (
	"time"

	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	PickupDate      time.Time `json:"pickup_date"`
	ReturnDate      time.Time `json:"return_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	res := make([]*BookingListResponse, len(items))
	for i, it := range items {
		resp := &BookingListResponse{}
		_ = copier.Copy(resp, it)
		res[i] = resp
	}
	return res
}

type CancelBookingResponse struct {
	Tier          string  `json:"tier"`
	RefundPercent float64 `json:"refund_percent"`
	RefundCents   int64   `json:"refund_cents"`
}

func FromCancelResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		Tier:          r.Tier,
		RefundPercent: r.RefundPercent,
		RefundCents:   r.RefundCents,
	}
}

type EarlyReturnResponse struct {
	DaysUsed    int   `json:"days_used"`
	RefundCents int64 `json:"refund_cents"`
}

func FromEarlyReturnResult(r *commands.EarlyReturnResult) *EarlyReturnResponse {
	return &EarlyReturnResponse{
		DaysUsed:    r.DaysUsed,
		RefundCents: r.RefundCents,
	}
}

type LateReturnResponse struct {
	DaysLate          int   `json:"days_late"`
	LateFeeCents      int64 `json:"late_fee_cents"`
	TotalWithFeeCents int64 `json:"total_with_fee_cents"`
}

func FromLateReturnResult(r *commands.LateReturnResult) *LateReturnResponse {
	return &LateReturnResponse{
		DaysLate:          r.DaysLate,
		LateFeeCents:      r.LateFeeCents,
		TotalWithFeeCents: r.TotalWithFeeCents,
	}
}
