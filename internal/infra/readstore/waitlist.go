package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitlistReadStore struct {
	db db.DBTX
}

func NewWaitlistReadStore(dbtx db.DBTX) *WaitlistReadStore {
	return &WaitlistReadStore{db: dbtx}
}

func (s *WaitlistReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.WaitlistEntryView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, vehicle_id, pickup_date, return_date, status, expires_at, created_at
		FROM waitlist_entries
		WHERE user_id = $1 AND status <> 'removed'
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist entries", err)
	}
	defer rows.Close()

	var views []*queries.WaitlistEntryView
	for rows.Next() {
		var view queries.WaitlistEntryView
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.VehicleID,
			&view.PickupDate, &view.ReturnDate,
			&view.Status, &view.ExpiresAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist entry row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist entry rows", err)
	}
	return views, nil
}
