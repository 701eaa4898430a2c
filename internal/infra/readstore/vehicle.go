package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

const vehicleViewSelect = `
	SELECT v.id, v.agent_id, v.name, v.vehicle_type, v.price_per_day_cents,
	       v.status, v.location, v.created_at,
	       AVG(r.rating)::float8 AS average_rating,
	       COUNT(r.id)::int AS review_count
	FROM vehicles v
	LEFT JOIN reviews r ON r.vehicle_id = v.id`

const vehicleViewGroup = ` GROUP BY v.id`

func (s *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row := s.db.QueryRow(ctx, vehicleViewSelect+` WHERE v.id = $1`+vehicleViewGroup, id)
	view, err := scanVehicleView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by id", err)
	}
	return view, nil
}

func (s *VehicleReadStore) FindAll(ctx context.Context, filter queries.VehicleFilter) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, vehicleViewSelect+`
		WHERE ($1 = '' OR v.vehicle_type = $1)
		  AND ($2 = '' OR v.location = $2)
		  AND ($3 = '' OR v.status = $3)`+vehicleViewGroup+`
		ORDER BY v.created_at DESC`,
		filter.VehicleType, filter.Location, filter.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	return collectVehicleViews(rows)
}

func (s *VehicleReadStore) FindByAgentID(ctx context.Context, agentID uuid.UUID) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, vehicleViewSelect+` WHERE v.agent_id = $1`+vehicleViewGroup+` ORDER BY v.created_at DESC`, agentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agent vehicles", err)
	}
	defer rows.Close()

	return collectVehicleViews(rows)
}

func (s *VehicleReadStore) EarningsByAgentID(ctx context.Context, agentID uuid.UUID) (*queries.AgentEarningsView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(b.id)::int,
		       COUNT(b.id) FILTER (WHERE b.status = 'active')::int,
		       COUNT(b.id) FILTER (WHERE b.status = 'completed')::int,
		       COALESCE(SUM(COALESCE(b.total_with_fee_cents, b.total_price_cents))
		                FILTER (WHERE b.status = 'completed'), 0)::bigint
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE v.agent_id = $1`, agentID)

	var view queries.AgentEarningsView
	if err := row.Scan(
		&view.TotalBookings, &view.ActiveBookings,
		&view.CompletedBookings, &view.EarningsCents,
	); err != nil {
		return nil, infra.WrapRepoErr("failed to summarise agent earnings", err)
	}
	return &view, nil
}

func collectVehicleViews(rows pgx.Rows) ([]*queries.VehicleView, error) {
	var views []*queries.VehicleView
	for rows.Next() {
		view, err := scanVehicleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return views, nil
}

func scanVehicleView(row pgx.Row) (*queries.VehicleView, error) {
	var view queries.VehicleView
	if err := row.Scan(
		&view.ID, &view.AgentID, &view.Name, &view.VehicleType, &view.PriceCents,
		&view.Status, &view.Location, &view.CreatedAt,
		&view.AverageRating, &view.ReviewCount,
	); err != nil {
		return nil, err
	}
	return &view, nil
}
