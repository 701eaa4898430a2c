package queries

import (
	"context"

	"github.com/google/uuid"
)

type CartQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type CartViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	repo CartViewRepo
}

func NewCartQueries(repo CartViewRepo) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
