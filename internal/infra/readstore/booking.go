package readstore

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view     queries.BookingView
		modCount int
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, vehicle_id, vehicle_name, pickup_date, return_date, location,
		       price_per_day_cents, days, total_price_cents, status,
		       is_recurring, recurring_type,
		       refund_tier, refund_cents, late_fee_cents, days_late, actual_return,
		       COALESCE(jsonb_array_length(modifications), 0),
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(
		&view.ID, &view.UserID, &view.VehicleID, &view.VehicleName,
		&view.PickupDate, &view.ReturnDate, &view.Location,
		&view.PricePerDayCents, &view.Days, &view.TotalPriceCents, &view.Status,
		&view.IsRecurring, &view.RecurringType,
		&view.RefundTier, &view.RefundCents, &view.LateFeeCents, &view.DaysLate, &view.ActualReturn,
		&modCount,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	view.ModificationCount = modCount
	return &view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, vehicle_name, pickup_date, return_date, total_price_cents, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY pickup_date DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookingListItems(rows)
}

func (s *BookingReadStore) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, vehicle_name, pickup_date, return_date, total_price_cents, status, created_at
		FROM bookings
		WHERE vehicle_id = $1
		ORDER BY pickup_date DESC`,
		vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by vehicle", err)
	}
	defer rows.Close()

	return collectBookingListItems(rows)
}

// OccupiedRangesByVehicle feeds the availability index and the waitlist
// matcher; only statuses that occupy the vehicle count.
func (s *BookingReadStore) OccupiedRangesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]booking.DateRange, error) {
	rows, err := s.db.Query(ctx, `
		SELECT pickup_date, return_date
		FROM bookings
		WHERE vehicle_id = $1 AND status IN ('active', 'pending')`,
		vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied ranges", err)
	}
	defer rows.Close()

	return collectRanges(rows)
}

func (s *BookingReadStore) AllOccupiedRanges(ctx context.Context) ([]booking.DateRange, error) {
	rows, err := s.db.Query(ctx, `
		SELECT pickup_date, return_date
		FROM bookings
		WHERE status IN ('active', 'pending')`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load fleet occupancy", err)
	}
	defer rows.Close()

	return collectRanges(rows)
}

func (s *BookingReadStore) CountAvailableVehicles(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM vehicles WHERE status = 'Available'`,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available vehicles", err)
	}
	return count, nil
}

func (s *BookingReadStore) HasOccupying(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE vehicle_id = $1 AND status IN ('active', 'pending')
		)`,
		vehicleID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check vehicle bookings", err)
	}
	return exists, nil
}

func collectBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName,
			&item.PickupDate, &item.ReturnDate,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func collectRanges(rows pgx.Rows) ([]booking.DateRange, error) {
	var ranges []booking.DateRange
	for rows.Next() {
		var pickup, ret time.Time
		if err := rows.Scan(&pickup, &ret); err != nil {
			return nil, infra.WrapRepoErr("failed to scan date range", err)
		}
		r, err := booking.NewDateRange(pickup, ret)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored date range", err)
		}
		ranges = append(ranges, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate date ranges", err)
	}
	return ranges, nil
}
