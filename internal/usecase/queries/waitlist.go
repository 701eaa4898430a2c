package queries

import (
	"context"

	"github.com/google/uuid"
)

type WaitlistQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*WaitlistEntryView, error)
}

type WaitlistViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*WaitlistEntryView, error)
}

type waitlistQueriesImpl struct {
	repo WaitlistViewRepo
}

func NewWaitlistQueries(repo WaitlistViewRepo) WaitlistQueries {
	return &waitlistQueriesImpl{repo: repo}
}

func (q *waitlistQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*WaitlistEntryView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
