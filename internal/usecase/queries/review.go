package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByVehicleID(ctx, vehicleID)
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
