package request

import (
	"time"

	"rentwheels/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRecurringRequest struct {
	VehicleID uuid.UUID  `json:"vehicle_id" binding:"required"`
	Frequency string     `json:"frequency" binding:"required,oneof=weekly monthly"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r *CreateRecurringRequest) ToCommand() commands.CreateRecurringRequest {
	cmd := commands.CreateRecurringRequest{
		VehicleID: r.VehicleID,
		Frequency: r.Frequency,
		StartDate: r.StartDate,
	}
	if r.EndDate != nil {
		cmd.EndDate = *r.EndDate
	}
	return cmd
}
