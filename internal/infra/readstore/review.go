package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewSelect = `
	SELECT r.id, r.user_id, u.name, r.vehicle_id, r.booking_id, r.rating, r.text, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

func (s *ReviewReadStore) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewViewSelect+` WHERE r.vehicle_id = $1 ORDER BY r.created_at DESC`, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by vehicle", err)
	}
	defer rows.Close()

	return collectReviewViews(rows)
}

func (s *ReviewReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewViewSelect+` WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	defer rows.Close()

	return collectReviewViews(rows)
}

func collectReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	var views []*queries.ReviewView
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.UserName, &view.VehicleID,
			&view.BookingID, &view.Rating, &view.Text, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return views, nil
}
