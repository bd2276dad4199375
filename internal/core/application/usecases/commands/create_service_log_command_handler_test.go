package commands_test

import (
	"testing"
	"time"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/core/ports"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceLogCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceLogCommand(serviceLogID, vehicleID, "brake pads worn", time.Now().UTC().Add(48*time.Hour), 350)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	serviceRepo := new(MockServiceLogRepository)
	sequences := new(MockSequenceGenerator)

	var updatedVehicle *vehicle.Vehicle

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("ServiceLogRepository").Return(serviceRepo)
	uow.On("Sequences").Return(sequences)
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	sequences.On("Next", mock.Anything, ports.ServiceLogSequence).Return(int64(7), nil).Once()
	serviceRepo.On("Add", mock.Anything, mock.AnythingOfType("*servicelog.ServiceLog")).Return(nil).Once()
	vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) { updatedVehicle = args.Get(1).(*vehicle.Vehicle) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateServiceLogCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "SRV-000007", result.Number())
	require.Equal(t, servicelog.New, result.Status())
	require.Equal(t, "brake pads worn", result.Issue())

	require.NotNil(t, updatedVehicle)
	require.Equal(t, vehicle.InShop, updatedVehicle.Status())
	require.NotNil(t, updatedVehicle.LastMaintenanceDate())
	uow.AssertExpectations(t)
	sequences.AssertExpectations(t)
}

func TestCreateServiceLogCommandHandler_Handle_VehicleOnTrip(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceLogCommand(kernel.NewUUID(), vehicleID, "brake pads worn", time.Now().UTC(), 350)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	sequences := new(MockSequenceGenerator)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	vehicleRepo.On("Get", mock.Anything, vehicleID).
		Return(onTripVehicle(t, vehicleID, kernel.NewUUID(), kernel.NewUUID()), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateServiceLogCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	sequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCreateServiceLogCommand_Validation(t *testing.T) {
	t.Run("should reject empty issue", func(t *testing.T) {
		_, err := commands.NewCreateServiceLogCommand(kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC(), 350)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative estimated cost", func(t *testing.T) {
		_, err := commands.NewCreateServiceLogCommand(kernel.NewUUID(), kernel.NewUUID(), "brake pads worn", time.Now().UTC(), -1)
		require.Error(t, err)
	})
}
