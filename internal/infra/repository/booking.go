package repository

import (
	"context"
	"encoding/json"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `
	id, user_id, vehicle_id, vehicle_name, pickup_date, return_date, location,
	price_per_day_cents, days, total_price_cents, status, cart_id,
	is_recurring, recurring_parent_id, recurring_type, modifications,
	cancelled_at, cancel_reason, refund_tier, refund_cents, original_total_cents,
	days_late, late_fee_cents, total_with_fee_cents, late_fee_calculated_at,
	early_return_at, days_used, early_refund_cents, actual_return,
	created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	modifications, err := json.Marshal(modificationRows(b.Modifications()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking modifications", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, `
		INSERT INTO bookings (
			id, user_id, vehicle_id, vehicle_name, pickup_date, return_date, location,
			price_per_day_cents, days, total_price_cents, status, cart_id,
			is_recurring, recurring_parent_id, recurring_type, modifications,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
		RETURNING id`,
		b.ID(), b.UserID(), b.VehicleID(), b.VehicleName(),
		b.Dates().Pickup(), b.Dates().Return(), b.Location(),
		b.PricePerDay().Cents(), b.Days(), b.TotalPrice().Cents(), string(b.Status()), b.CartID(),
		b.IsRecurring(), b.RecurringParentID(), nullableString(b.RecurringType()), modifications,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	modifications, err := json.Marshal(modificationRows(b.Modifications()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking modifications", err)
	}

	var (
		cancelledAt        *time.Time
		cancelReason       *string
		refundTier         *string
		refundCents        *int64
		originalTotalCents *int64
	)
	if c := b.Cancellation(); c != nil {
		cancelledAt = &c.CancelledAt
		cancelReason = &c.Reason
		tier := string(c.Tier)
		refundTier = &tier
		cents := c.RefundAmount.Cents()
		refundCents = &cents
		original := c.OriginalTotal.Cents()
		originalTotalCents = &original
	}

	var (
		daysLate            *int
		lateFeeCents        *int64
		totalWithFeeCents   *int64
		lateFeeCalculatedAt *time.Time
	)
	if lf := b.LateFeeRecord(); lf != nil {
		daysLate = &lf.DaysLate
		fee := lf.Fee.Cents()
		lateFeeCents = &fee
		total := lf.TotalWithFee.Cents()
		totalWithFeeCents = &total
		lateFeeCalculatedAt = &lf.CalculatedAt
	}

	var (
		earlyReturnAt    *time.Time
		daysUsed         *int
		earlyRefundCents *int64
	)
	if er := b.EarlyReturnRecord(); er != nil {
		earlyReturnAt = &er.ActualReturn
		daysUsed = &er.DaysUsed
		refund := er.Refund.Cents()
		earlyRefundCents = &refund
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET
			pickup_date = $2, return_date = $3, location = $4,
			days = $5, total_price_cents = $6, status = $7, modifications = $8,
			cancelled_at = $9, cancel_reason = $10, refund_tier = $11,
			refund_cents = $12, original_total_cents = $13,
			days_late = $14, late_fee_cents = $15, total_with_fee_cents = $16, late_fee_calculated_at = $17,
			early_return_at = $18, days_used = $19, early_refund_cents = $20,
			actual_return = $21, updated_at = now()
		WHERE id = $1`,
		b.ID(),
		b.Dates().Pickup(), b.Dates().Return(), b.Location(),
		b.Days(), b.TotalPrice().Cents(), string(b.Status()), modifications,
		cancelledAt, cancelReason, refundTier,
		refundCents, originalTotalCents,
		daysLate, lateFeeCents, totalWithFeeCents, lateFeeCalculatedAt,
		earlyReturnAt, daysUsed, earlyRefundCents,
		b.ActualReturn(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindUpcomingByRecurringParent(ctx context.Context, parentID uuid.UUID, from time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE recurring_parent_id = $1
		  AND pickup_date > $2
		  AND status IN ('active', 'pending')
		ORDER BY pickup_date`,
		parentID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recurring instances", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE status = 'active' AND return_date < $1
		ORDER BY return_date`,
		asOf)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overdue bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

type modificationRow struct {
	ModifiedAt  time.Time `json:"modified_at"`
	OldPickup   time.Time `json:"old_pickup"`
	OldReturn   time.Time `json:"old_return"`
	OldLocation string    `json:"old_location"`
	OldTotal    int64     `json:"old_total_cents"`
}

func modificationRows(records []booking.ModificationRecord) []modificationRow {
	rows := make([]modificationRow, len(records))
	for i, m := range records {
		rows[i] = modificationRow{
			ModifiedAt:  m.ModifiedAt,
			OldPickup:   m.OldPickup,
			OldReturn:   m.OldReturn,
			OldLocation: m.OldLocation,
			OldTotal:    m.OldTotal.Cents(),
		}
	}
	return rows
}

func modificationRecords(rows []modificationRow) []booking.ModificationRecord {
	records := make([]booking.ModificationRecord, len(rows))
	for i, row := range rows {
		records[i] = booking.ModificationRecord{
			ModifiedAt:  row.ModifiedAt,
			OldPickup:   row.OldPickup,
			OldReturn:   row.OldReturn,
			OldLocation: row.OldLocation,
			OldTotal:    booking.NewMoney(row.OldTotal),
		}
	}
	return records
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, vehicleID uuid.UUID
		vehicleName           string
		pickupDate, returnAt  time.Time
		location              string
		pricePerDayCents      int64
		days                  int
		totalPriceCents       int64
		status                string
		cartID                *uuid.UUID
		isRecurring           bool
		recurringParentID     *uuid.UUID
		recurringType         *string
		modificationsJSON     []byte

		cancelledAt        *time.Time
		cancelReason       *string
		refundTier         *string
		refundCents        *int64
		originalTotalCents *int64

		daysLate            *int
		lateFeeCents        *int64
		totalWithFeeCents   *int64
		lateFeeCalculatedAt *time.Time

		earlyReturnAt    *time.Time
		daysUsed         *int
		earlyRefundCents *int64
		actualReturn     *time.Time

		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &userID, &vehicleID, &vehicleName, &pickupDate, &returnAt, &location,
		&pricePerDayCents, &days, &totalPriceCents, &status, &cartID,
		&isRecurring, &recurringParentID, &recurringType, &modificationsJSON,
		&cancelledAt, &cancelReason, &refundTier, &refundCents, &originalTotalCents,
		&daysLate, &lateFeeCents, &totalWithFeeCents, &lateFeeCalculatedAt,
		&earlyReturnAt, &daysUsed, &earlyRefundCents, &actualReturn,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(pickupDate, returnAt)
	if err != nil {
		return nil, err
	}
	bookingStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var modRows []modificationRow
	if len(modificationsJSON) > 0 {
		if err := json.Unmarshal(modificationsJSON, &modRows); err != nil {
			return nil, err
		}
	}

	var cancellation *booking.CancellationRecord
	if cancelledAt != nil && refundTier != nil {
		cancellation = &booking.CancellationRecord{
			CancelledAt:   *cancelledAt,
			Reason:        derefString(cancelReason),
			Tier:          booking.RefundTier(*refundTier),
			RefundAmount:  booking.NewMoney(derefInt64(refundCents)),
			OriginalTotal: booking.NewMoney(derefInt64(originalTotalCents)),
		}
	}

	var lateFee *booking.LateFeeRecord
	if daysLate != nil {
		lateFee = &booking.LateFeeRecord{
			DaysLate:     *daysLate,
			Fee:          booking.NewMoney(derefInt64(lateFeeCents)),
			TotalWithFee: booking.NewMoney(derefInt64(totalWithFeeCents)),
		}
		if lateFeeCalculatedAt != nil {
			lateFee.CalculatedAt = *lateFeeCalculatedAt
		}
	}

	var earlyReturn *booking.EarlyReturnRecord
	if earlyReturnAt != nil {
		earlyReturn = &booking.EarlyReturnRecord{
			ActualReturn: *earlyReturnAt,
			DaysUsed:     derefInt(daysUsed),
			Refund:       booking.NewMoney(derefInt64(earlyRefundCents)),
		}
	}

	return booking.ReconstructBooking(
		id, userID, vehicleID, vehicleName,
		dates, location,
		booking.NewMoney(pricePerDayCents), days, booking.NewMoney(totalPriceCents),
		bookingStatus, cartID,
		isRecurring, recurringParentID, derefString(recurringType),
		modificationRecords(modRows),
		cancellation, lateFee, earlyReturn, actualReturn,
		createdAt, updatedAt,
	), nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
