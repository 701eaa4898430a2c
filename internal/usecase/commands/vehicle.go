package commands

import (
	"context"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/vehicle"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/shared"
)

var ErrVehicleNotOwned = errs.New("vehicle not owned by agent")

type CreateVehicleRequest struct {
	Name        string
	VehicleType string
	PriceCents  int64
	Location    string
}

type UpdateVehicleRequest struct {
	Name        string
	VehicleType string
	PriceCents  int64
	Location    string
	Status      string
}

type VehicleCommands interface {
	CreateVehicle(ctx context.Context, agentID uuid.UUID, req CreateVehicleRequest) (uuid.UUID, error)
	UpdateVehicle(ctx context.Context, agentID, vehicleID uuid.UUID, req UpdateVehicleRequest) error
	DeleteVehicle(ctx context.Context, agentID, vehicleID uuid.UUID) error
}

type vehicleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleCommands(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow, clock: clk}
}

func (c *vehicleCommandsImpl) CreateVehicle(ctx context.Context, agentID uuid.UUID, req CreateVehicleRequest) (uuid.UUID, error) {
	entity, err := vehicle.NewVehicle(agentID, req.Name, req.VehicleType, booking.NewMoney(req.PriceCents), req.Location, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var vehicleID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Vehicles().Create(ctx, entity)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		vehicleID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return vehicleID, nil
}

func (c *vehicleCommandsImpl) UpdateVehicle(ctx context.Context, agentID, vehicleID uuid.UUID, req UpdateVehicleRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwned(ctx, tx, agentID, vehicleID)
		if err != nil {
			return err
		}

		if err := entity.Update(req.Name, req.VehicleType, booking.NewMoney(req.PriceCents), req.Location); err != nil {
			return err
		}
		if req.Status != "" {
			status, statusErr := vehicle.NewStatus(req.Status)
			if statusErr != nil {
				return statusErr
			}
			entity.SetStatus(status)
		}

		if err := tx.Vehicles().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *vehicleCommandsImpl) DeleteVehicle(ctx context.Context, agentID, vehicleID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.loadOwned(ctx, tx, agentID, vehicleID); err != nil {
			return err
		}

		occupied, err := tx.Reads().HasOccupyingBookings(ctx, vehicleID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if occupied {
			return errs.ErrVehicleHasBookings
		}

		if err := tx.Vehicles().Delete(ctx, vehicleID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *vehicleCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, agentID, vehicleID uuid.UUID) (*vehicle.Vehicle, error) {
	entity, err := tx.Vehicles().FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(agentID) {
		return nil, ErrVehicleNotOwned
	}
	return entity, nil
}
