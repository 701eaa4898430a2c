package response

import (
	"time"

	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RecurringRentalResponse struct {
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

func FromRecurringView(v *queries.RecurringRentalView) *RecurringRentalResponse {
	resp := &RecurringRentalResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromRecurringList(views []*queries.RecurringRentalView) []*RecurringRentalResponse {
	res := make([]*RecurringRentalResponse, len(views))
	for i, v := range views {
		res[i] = FromRecurringView(v)
	}
	return res
}

type CreateRecurringResponse struct {
	RentalID        uuid.UUID   `json:"rental_id"`
	BookingIDs      []uuid.UUID `json:"booking_ids"`
	TotalPriceCents int64       `json:"total_price_cents"`
	PointsEarned    int64       `json:"points_earned"`
}

func FromCreateRecurringResult(r *commands.CreateRecurringResult) *CreateRecurringResponse {
	return &CreateRecurringResponse{
		RentalID:        r.RentalID,
		BookingIDs:      r.BookingIDs,
		TotalPriceCents: r.TotalPriceCents,
		PointsEarned:    r.PointsEarned,
	}
}

type CancelRecurringResponse struct {
	CancelledInstances int `json:"cancelled_instances"`
}
