package review

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/pkg/errs"
)

type Rating int

func NewRating(n int) (Rating, error) {
	if n < 1 || n > 5 {
		return 0, errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrDomainValidation)
	}
	return Rating(n), nil
}

func (r Rating) Int() int { return int(r) }

// Review is feedback attached to a completed rental.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	bookingID uuid.UUID
	vehicleID uuid.UUID
	rating    Rating
	text      string
	createdAt time.Time
}

func NewReview(userID, bookingID, vehicleID uuid.UUID, rating Rating, text string, now time.Time) (*Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errs.Mark(errs.New("review text is required"), errs.ErrDomainValidation)
	}
	return &Review{
		id:        uuid.New(),
		userID:    userID,
		bookingID: bookingID,
		vehicleID: vehicleID,
		rating:    rating,
		text:      text,
		createdAt: now,
	}, nil
}

func ReconstructReview(id, userID, bookingID, vehicleID uuid.UUID, rating Rating, text string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		bookingID: bookingID,
		vehicleID: vehicleID,
		rating:    rating,
		text:      text,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) VehicleID() uuid.UUID { return r.vehicleID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Text() string         { return r.text }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
