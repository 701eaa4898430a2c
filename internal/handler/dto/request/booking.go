package request

import (
	"time"

	"rentwheels/internal/usecase/commands"
)

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

func (r *CancelBookingRequest) ToCommand() commands.CancelBookingRequest {
	return commands.CancelBookingRequest{Reason: r.Reason}
}

type ModifyBookingRequest struct {
	PickupDate time.Time `json:"pickup_date" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
	Location   string    `json:"location" binding:"required,max=200"`
}

func (r *ModifyBookingRequest) ToCommand() commands.ModifyBookingRequest {
	return commands.ModifyBookingRequest{
		PickupDate: r.PickupDate,
		ReturnDate: r.ReturnDate,
		Location:   r.Location,
	}
}

// ActualReturn is optional; the current time is used when omitted.
type EarlyReturnRequest struct {
	ActualReturn *time.Time `json:"actual_return,omitempty"`
}
