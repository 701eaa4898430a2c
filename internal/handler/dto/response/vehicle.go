package response

import (
	"time"

	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
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

func FromVehicleView(v *queries.VehicleView) *VehicleResponse {
	resp := &VehicleResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromVehicleList(views []*queries.VehicleView) []*VehicleResponse {
	res := make([]*VehicleResponse, len(views))
	for i, v := range views {
		res[i] = FromVehicleView(v)
	}
	return res
}
