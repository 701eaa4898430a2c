package readstore

import (
	"context"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (s *CartReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, vehicle_name, vehicle_type, price_per_day_cents,
		       pickup_date, return_date, location, duration, total_cents
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart view", err)
	}
	defer rows.Close()

	view := &queries.CartView{Items: []queries.CartItemView{}}
	var subtotal int64
	for rows.Next() {
		var item queries.CartItemView
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName, &item.VehicleType, &item.PricePerDayCents,
			&item.PickupDate, &item.ReturnDate, &item.Location, &item.Duration, &item.TotalCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		view.Items = append(view.Items, item)
		subtotal += item.TotalCents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}

	tax := booking.NewMoney(subtotal).MulFactor(booking.CartTaxRate)
	view.SubtotalCents = subtotal
	view.TaxCents = tax.Cents()
	view.TotalCents = subtotal + tax.Cents()
	return view, nil
}
