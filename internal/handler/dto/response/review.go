package response

import (
	"time"

	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	resp := &ReviewResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromReviewList(views []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(views))
	for i, v := range views {
		res[i] = FromReviewView(v)
	}
	return res
}
