package commands_test

import (
	"errors"
	"testing"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterVehicleCommandHandler(factory)
	veh, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, veh)
	require.Equal(t, "AB-1234", veh.Plate())
	require.Equal(t, vehicle.Available, veh.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterVehicleCommand{} // not constructed properly

	factory := new(MockVehicleUoWFactory)
	h := commands.NewRegisterVehicleCommandHandler(factory)

	veh, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, veh)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterVehicleCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterVehicleCommandHandler(factory)
	veh, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, veh)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterVehicleCommandHandler(factory)
	veh, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Nil(t, veh)
	uow.AssertExpectations(t)
}
