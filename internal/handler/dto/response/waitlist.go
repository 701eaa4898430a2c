package response

import (
	"time"

	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WaitlistEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromWaitlistView(v *queries.WaitlistEntryView) *WaitlistEntryResponse {
	resp := &WaitlistEntryResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromWaitlistList(views []*queries.WaitlistEntryView) []*WaitlistEntryResponse {
	res := make([]*WaitlistEntryResponse, len(views))
	for i, v := range views {
		res[i] = FromWaitlistView(v)
	}
	return res
}

type WaitlistCheckResponse struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
}

func FromWaitlistCheckResult(r *commands.WaitlistCheckResult) *WaitlistCheckResponse {
	return &WaitlistCheckResponse{
		Checked:  r.Checked,
		Notified: r.Notified,
	}
}
