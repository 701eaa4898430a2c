//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/domain/vehicle"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
)

func newVehicleCommands(uow *fakeUoW) commands.VehicleCommands {
	return commands.NewVehicleCommands(uow, clock.NewMockClock(date(2024, 8, 1)))
}

func TestCreateVehicle(t *testing.T) {
	uow := newFakeUoW()
	agentID := uuid.New()
	cmds := newVehicleCommands(uow)

	id, err := cmds.CreateVehicle(context.Background(), agentID, commands.CreateVehicleRequest{
		Name:        "Corolla 2022",
		VehicleType: "Sedan",
		PriceCents:  5500,
		Location:    "Airport",
	})
	require.NoError(t, err)

	v, ok := uow.state.vehicles[id]
	require.True(t, ok)
	assert.Equal(t, agentID, v.AgentID())
	assert.Equal(t, vehicle.StatusAvailable, v.Status())
	assert.Equal(t, int64(5500), v.PricePerDay().Cents())

	t.Run("name is required", func(t *testing.T) {
		_, err := cmds.CreateVehicle(context.Background(), agentID, commands.CreateVehicleRequest{
			Name:       "  ",
			PriceCents: 5500,
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := cmds.CreateVehicle(context.Background(), agentID, commands.CreateVehicleRequest{
			Name:       "Corolla 2022",
			PriceCents: 0,
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUpdateVehicle(t *testing.T) {
	uow := newFakeUoW()
	agentID := uuid.New()
	cmds := newVehicleCommands(uow)

	id, err := cmds.CreateVehicle(context.Background(), agentID, commands.CreateVehicleRequest{
		Name:        "Corolla 2022",
		VehicleType: "Sedan",
		PriceCents:  5500,
		Location:    "Airport",
	})
	require.NoError(t, err)

	err = cmds.UpdateVehicle(context.Background(), agentID, id, commands.UpdateVehicleRequest{
		Name:        "Corolla 2022 Hybrid",
		VehicleType: "Sedan",
		PriceCents:  6000,
		Location:    "Downtown",
		Status:      "Maintenance",
	})
	require.NoError(t, err)

	v := uow.state.vehicles[id]
	assert.Equal(t, "Corolla 2022 Hybrid", v.Name())
	assert.Equal(t, int64(6000), v.PricePerDay().Cents())
	assert.Equal(t, "Downtown", v.Location())
	assert.Equal(t, vehicle.StatusMaintenance, v.Status())

	t.Run("another agent cannot touch the listing", func(t *testing.T) {
		err := cmds.UpdateVehicle(context.Background(), uuid.New(), id, commands.UpdateVehicleRequest{
			Name:        "Hijacked",
			VehicleType: "Sedan",
			PriceCents:  100,
			Location:    "Elsewhere",
		})
		assert.ErrorIs(t, err, commands.ErrVehicleNotOwned)
	})

	t.Run("unknown status string", func(t *testing.T) {
		err := cmds.UpdateVehicle(context.Background(), agentID, id, commands.UpdateVehicleRequest{
			Name:        "Corolla 2022 Hybrid",
			VehicleType: "Sedan",
			PriceCents:  6000,
			Location:    "Downtown",
			Status:      "Broken",
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		err := cmds.UpdateVehicle(context.Background(), agentID, uuid.New(), commands.UpdateVehicleRequest{
			Name:        "Ghost",
			VehicleType: "Sedan",
			PriceCents:  6000,
			Location:    "Downtown",
		})
		assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})
}

func TestDeleteVehicle(t *testing.T) {
	uow := newFakeUoW()
	agentID := uuid.New()
	cmds := newVehicleCommands(uow)

	id, err := cmds.CreateVehicle(context.Background(), agentID, commands.CreateVehicleRequest{
		Name:        "Corolla 2022",
		VehicleType: "Sedan",
		PriceCents:  5500,
		Location:    "Airport",
	})
	require.NoError(t, err)

	t.Run("blocked while reservations occupy it", func(t *testing.T) {
		occupiedRange(t, uow, id, 10, 13)
		err := cmds.DeleteVehicle(context.Background(), agentID, id)
		assert.ErrorIs(t, err, errs.ErrVehicleHasBookings)
		delete(uow.state.occupied, id)
	})

	t.Run("not owned", func(t *testing.T) {
		err := cmds.DeleteVehicle(context.Background(), uuid.New(), id)
		assert.ErrorIs(t, err, commands.ErrVehicleNotOwned)
	})

	require.NoError(t, cmds.DeleteVehicle(context.Background(), agentID, id))
	assert.NotContains(t, uow.state.vehicles, id)
}
