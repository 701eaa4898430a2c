package request

import (
	"rentwheels/internal/usecase/commands"
)

type CreateVehicleRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	VehicleType string `json:"vehicle_type" binding:"required,max=50"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Location    string `json:"location" binding:"required,max=200"`
}

func (r *CreateVehicleRequest) ToCommand() commands.CreateVehicleRequest {
	return commands.CreateVehicleRequest{
		Name:        r.Name,
		VehicleType: r.VehicleType,
		PriceCents:  r.PriceCents,
		Location:    r.Location,
	}
}

type UpdateVehicleRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	VehicleType string `json:"vehicle_type" binding:"required,max=50"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Location    string `json:"location" binding:"required,max=200"`
	Status      string `json:"status" binding:"omitempty,oneof=Available Rented Maintenance"`
}

func (r *UpdateVehicleRequest) ToCommand() commands.UpdateVehicleRequest {
	return commands.UpdateVehicleRequest{
		Name:        r.Name,
		VehicleType: r.VehicleType,
		PriceCents:  r.PriceCents,
		Location:    r.Location,
		Status:      r.Status,
	}
}
