package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecurringRepository struct {
	db db.DBTX
}

func NewRecurringRepository(dbtx db.DBTX) *RecurringRepository {
	return &RecurringRepository{db: dbtx}
}

func (r *RecurringRepository) Create(ctx context.Context, rental *recurring.Rental) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO recurring_rentals (
			id, user_id, vehicle_id, frequency, start_date, end_date,
			location, price_per_day_cents, status, booking_ids, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id`,
		rental.ID(), rental.UserID(), rental.VehicleID(), string(rental.Frequency()),
		rental.StartDate(), rental.EndDate(),
		rental.Location(), rental.PricePerDay().Cents(), string(rental.Status()), rental.BookingIDs(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create recurring rental", err)
	}
	return id, nil
}

func (r *RecurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*recurring.Rental, error) {
	var (
		userID, vehicleID  uuid.UUID
		frequency          string
		startDate, endDate time.Time
		location           string
		pricePerDayCents   int64
		status             string
		bookingIDs         []uuid.UUID
		createdAt          time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT user_id, vehicle_id, frequency, start_date, end_date,
		       location, price_per_day_cents, status, booking_ids, created_at
		FROM recurring_rentals
		WHERE id = $1`,
		id,
	).Scan(&userID, &vehicleID, &frequency, &startDate, &endDate,
		&location, &pricePerDayCents, &status, &bookingIDs, &createdAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("recurring rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recurring rental", err)
	}

	freq, err := recurring.NewFrequency(frequency)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored frequency", err)
	}
	rentalStatus, err := recurring.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored recurring status", err)
	}

	return recurring.ReconstructRental(
		id, userID, vehicleID,
		freq, startDate, endDate,
		location, booking.NewMoney(pricePerDayCents),
		rentalStatus, bookingIDs, createdAt,
	), nil
}

func (r *RecurringRepository) UpdateStatus(ctx context.Context, rental *recurring.Rental) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE recurring_rentals SET status = $2 WHERE id = $1`,
		rental.ID(), string(rental.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update recurring rental status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recurring rental not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
