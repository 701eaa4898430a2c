package request

import (
	"time"

	"rentwheels/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	VehicleID  uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupDate time.Time `json:"pickup_date" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
}

func (r *AddCartItemRequest) ToCommand() commands.AddCartItemRequest {
	return commands.AddCartItemRequest{
		VehicleID:  r.VehicleID,
		PickupDate: r.PickupDate,
		ReturnDate: r.ReturnDate,
	}
}
