package request

import (
	"rentwheels/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Text      string    `json:"text" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Text:      r.Text,
	}
}
