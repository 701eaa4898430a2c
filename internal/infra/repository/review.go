package repository

import (
	"context"

	"rentwheels/internal/domain/review"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (id, user_id, booking_id, vehicle_id, rating, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		rev.ID(), rev.UserID(), rev.BookingID(), rev.VehicleID(),
		rev.Rating().Int(), rev.Text(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
