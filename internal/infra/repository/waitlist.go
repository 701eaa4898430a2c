package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/waitlist"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WaitlistRepository struct {
	db db.DBTX
}

func NewWaitlistRepository(dbtx db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: dbtx}
}

const waitlistColumns = `id, user_id, vehicle_id, pickup_date, return_date, status, created_at, expires_at`

func (r *WaitlistRepository) Create(ctx context.Context, e *waitlist.Entry) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO waitlist_entries (
			id, user_id, vehicle_id, pickup_date, return_date, status, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		e.ID(), e.UserID(), e.VehicleID(),
		e.Desired().Pickup(), e.Desired().Return(),
		string(e.Status()), e.CreatedAt(), e.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create waitlist entry", err)
	}
	return id, nil
}

func (r *WaitlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+waitlistColumns+` FROM waitlist_entries WHERE id = $1`, id)
	entry, err := scanWaitlistEntry(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waitlist entry", err)
	}
	return entry, nil
}

func (r *WaitlistRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*waitlist.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+waitlistColumns+`
		FROM waitlist_entries
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active waitlist entries", err)
	}
	defer rows.Close()

	return collectWaitlistEntries(rows)
}

func (r *WaitlistRepository) FindAllActive(ctx context.Context) ([]*waitlist.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+waitlistColumns+`
		FROM waitlist_entries
		WHERE status = 'active'
		ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active waitlist entries", err)
	}
	defer rows.Close()

	return collectWaitlistEntries(rows)
}

func (r *WaitlistRepository) ExistsActive(ctx context.Context, userID, vehicleID uuid.UUID, pickupDate time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM waitlist_entries
			WHERE user_id = $1 AND vehicle_id = $2 AND pickup_date = $3 AND status = 'active'
		)`,
		userID, vehicleID, pickupDate,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check waitlist duplicate", err)
	}
	return exists, nil
}

func (r *WaitlistRepository) UpdateStatus(ctx context.Context, e *waitlist.Entry) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE waitlist_entries SET status = $2 WHERE id = $1`,
		e.ID(), string(e.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func collectWaitlistEntries(rows pgx.Rows) ([]*waitlist.Entry, error) {
	var entries []*waitlist.Entry
	for rows.Next() {
		entry, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist entry", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist entries", err)
	}
	return entries, nil
}

func scanWaitlistEntry(row pgx.Row) (*waitlist.Entry, error) {
	var (
		id, userID, vehicleID  uuid.UUID
		pickupDate, returnDate time.Time
		status                 string
		createdAt, expiresAt   time.Time
	)
	if err := row.Scan(&id, &userID, &vehicleID, &pickupDate, &returnDate, &status, &createdAt, &expiresAt); err != nil {
		return nil, err
	}

	desired, err := booking.NewDateRange(pickupDate, returnDate)
	if err != nil {
		return nil, err
	}
	entryStatus, err := waitlist.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return waitlist.ReconstructEntry(id, userID, vehicleID, desired, entryStatus, createdAt, expiresAt), nil
}
