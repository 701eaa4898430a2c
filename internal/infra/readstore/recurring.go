package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecurringReadStore struct {
	db db.DBTX
}

func NewRecurringReadStore(dbtx db.DBTX) *RecurringReadStore {
	return &RecurringReadStore{db: dbtx}
}

const recurringViewColumns = `
	id, user_id, vehicle_id, frequency, start_date, end_date,
	location, price_per_day_cents, status, booking_ids, created_at`

func (s *RecurringReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecurringRentalView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+recurringViewColumns+` FROM recurring_rentals WHERE id = $1`, id)
	view, err := scanRecurringView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("recurring rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recurring rental", err)
	}
	return view, nil
}

func (s *RecurringReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RecurringRentalView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+recurringViewColumns+` FROM recurring_rentals WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recurring rentals", err)
	}
	defer rows.Close()

	var views []*queries.RecurringRentalView
	for rows.Next() {
		view, err := scanRecurringView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan recurring rental row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recurring rental rows", err)
	}
	return views, nil
}

func scanRecurringView(row pgx.Row) (*queries.RecurringRentalView, error) {
	var view queries.RecurringRentalView
	if err := row.Scan(
		&view.ID, &view.UserID, &view.VehicleID, &view.Frequency,
		&view.StartDate, &view.EndDate,
		&view.Location, &view.PricePerDayCents, &view.Status, &view.BookingIDs, &view.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &view, nil
}
