package commands_test

import (
	"testing"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelServiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCancelServiceCommand(serviceLogID, "parts unavailable")
	require.NoError(t, err)

	serviceRepo := new(MockServiceLogRepository)
	vehicleRepo := new(MockVehicleRepository)

	var updatedVehicle *vehicle.Vehicle

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceLogRepository").Return(serviceRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	serviceRepo.On("Get", mock.Anything, serviceLogID).
		Return(inProgressServiceLog(t, serviceLogID, vehicleID), nil).Once()
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(inShopVehicle(t, vehicleID), nil).Once()
	serviceRepo.On("Update", mock.Anything, mock.AnythingOfType("*servicelog.ServiceLog")).Return(nil).Once()
	vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) { updatedVehicle = args.Get(1).(*vehicle.Vehicle) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelServiceCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, servicelog.Cancelled, result.Status())
	require.Equal(t, "parts unavailable", result.CancelReason())

	require.NotNil(t, updatedVehicle)
	require.Equal(t, vehicle.Available, updatedVehicle.Status())
	uow.AssertExpectations(t)
}

func TestCancelServiceCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCancelServiceCommand(serviceLogID, "duplicate request")
	require.NoError(t, err)

	cancelled, err := servicelog.RestoreServiceLog(
		serviceLogID, "SRV-000007", vehicleID, "brake pads worn",
		inProgressServiceLog(t, serviceLogID, vehicleID).ScheduledDate(),
		nil, nil, 350, 0, "", "parts unavailable", servicelog.Cancelled, 3,
	)
	require.NoError(t, err)

	serviceRepo := new(MockServiceLogRepository)
	vehicleRepo := new(MockVehicleRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceLogRepository").Return(serviceRepo)
	serviceRepo.On("Get", mock.Anything, serviceLogID).Return(cancelled, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelServiceCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	vehicleRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
