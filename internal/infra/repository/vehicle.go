package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/vehicle"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO vehicles (id, agent_id, name, vehicle_type, price_per_day_cents, status, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		v.ID(), v.AgentID(), v.Name(), v.VehicleType(),
		v.PricePerDay().Cents(), string(v.Status()), v.Location(), v.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	var (
		agentID           uuid.UUID
		name, vehicleType string
		pricePerDayCents  int64
		status, location  string
		createdAt         time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT agent_id, name, vehicle_type, price_per_day_cents, status, location, created_at
		FROM vehicles
		WHERE id = $1`,
		id,
	).Scan(&agentID, &name, &vehicleType, &pricePerDayCents, &status, &location, &createdAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}

	vehicleStatus, err := vehicle.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored vehicle status", err)
	}

	return vehicle.ReconstructVehicle(
		id, agentID, name, vehicleType,
		booking.NewMoney(pricePerDayCents), vehicleStatus, location, createdAt,
	), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vehicles
		SET name = $2, vehicle_type = $3, price_per_day_cents = $4, status = $5, location = $6
		WHERE id = $1`,
		v.ID(), v.Name(), v.VehicleType(), v.PricePerDay().Cents(), string(v.Status()), v.Location())
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
