package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/cart"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

func (r *CartRepository) AddItem(ctx context.Context, userID uuid.UUID, item *cart.Item) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO cart_items (
			id, user_id, vehicle_id, vehicle_name, vehicle_type,
			price_per_day_cents, pickup_date, return_date, location,
			duration, total_cents, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		RETURNING id`,
		item.ID(), userID, item.VehicleID(), item.VehicleName(), item.VehicleType(),
		item.PricePerDay().Cents(), item.Dates().Pickup(), item.Dates().Return(), item.Location(),
		item.Duration(), item.Total().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add cart item", err)
	}
	return id, nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, vehicle_id, vehicle_name, vehicle_type, price_per_day_cents,
		       pickup_date, return_date, location, duration, total_cents, created_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}
	defer rows.Close()

	var items []*cart.Item
	for rows.Next() {
		var (
			id, vehicleID            uuid.UUID
			vehicleName, vehicleType string
			pricePerDayCents         int64
			pickupDate, returnDate   time.Time
			location                 string
			duration                 int
			totalCents               int64
			createdAt                time.Time
		)
		if err := rows.Scan(&id, &vehicleID, &vehicleName, &vehicleType, &pricePerDayCents,
			&pickupDate, &returnDate, &location, &duration, &totalCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}

		dates, err := booking.NewDateRange(pickupDate, returnDate)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid cart item date range", err)
		}

		items = append(items, cart.ReconstructItem(
			id, vehicleID, vehicleName, vehicleType,
			booking.NewMoney(pricePerDayCents), dates, location,
			duration, booking.NewMoney(totalCents), createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart items", err)
	}

	return cart.NewCart(userID, items), nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
