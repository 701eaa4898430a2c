package queries

import (
	"context"

	"rentwheels/internal/pkg/errs"

	"github.com/google/uuid"
)

type RecurringQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*RecurringRentalView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RecurringRentalView, error)
}

type RecurringViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringRentalView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RecurringRentalView, error)
}

type recurringQueriesImpl struct {
	repo RecurringViewRepo
}

func NewRecurringQueries(repo RecurringViewRepo) RecurringQueries {
	return &recurringQueriesImpl{repo: repo}
}

func (q *recurringQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*RecurringRentalView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		return nil, errs.ErrRecurringNotFound
	}
	return view, nil
}

func (q *recurringQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RecurringRentalView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
