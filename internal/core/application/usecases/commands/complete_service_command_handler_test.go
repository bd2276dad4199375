package commands_test

import (
	"testing"
	"time"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaintenanceInterval = 90 * 24 * time.Hour

func TestCompleteServiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	odometer := 125400.0
	cmd, err := commands.NewCompleteServiceCommand(serviceLogID, 420.5, &odometer, "replaced both sides")
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

	h := commands.NewCompleteServiceCommandHandler(factory, testMaintenanceInterval)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, servicelog.Completed, result.Status())
	require.InDelta(t, 420.5, result.Cost(), 0.001)
	require.Equal(t, "replaced both sides", result.Notes())
	require.NotNil(t, result.CompletedAt())

	require.NotNil(t, updatedVehicle)
	require.Equal(t, vehicle.Available, updatedVehicle.Status())
	require.InDelta(t, 125400.0, updatedVehicle.OdometerKm(), 0.001)
	require.NotNil(t, updatedVehicle.NextMaintenanceDue())
	expectedDue := time.Now().UTC().Add(testMaintenanceInterval)
	require.WithinDuration(t, expectedDue, *updatedVehicle.NextMaintenanceDue(), time.Minute)
	uow.AssertExpectations(t)
}

func TestCompleteServiceCommandHandler_Handle_WithoutOdometer(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCompleteServiceCommand(serviceLogID, 420.5, nil, "")
	require.NoError(t, err)

	serviceRepo := new(MockServiceLogRepository)
	vehicleRepo := new(MockVehicleRepository)

	var updatedVehicle *vehicle.Vehicle

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceLogRepository").Return(serviceRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	serviceRepo.On("Get", mock.Anything, serviceLogID).
		Return(newServiceLog(t, serviceLogID, vehicleID), nil).Once()
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(inShopVehicle(t, vehicleID), nil).Once()
	serviceRepo.On("Update", mock.Anything, mock.AnythingOfType("*servicelog.ServiceLog")).Return(nil).Once()
	vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) { updatedVehicle = args.Get(1).(*vehicle.Vehicle) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteServiceCommandHandler(factory, testMaintenanceInterval)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, servicelog.Completed, result.Status())

	require.NotNil(t, updatedVehicle)
	// Odometer reading untouched when the report omits one.
	require.InDelta(t, 125000.0, updatedVehicle.OdometerKm(), 0.001)
	uow.AssertExpectations(t)
}

func TestCompleteServiceCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	serviceLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCompleteServiceCommand(serviceLogID, 420.5, nil, "")
	require.NoError(t, err)

	started := time.Now().UTC().Add(-48 * time.Hour)
	finished := started.Add(24 * time.Hour)
	completed, err := servicelog.RestoreServiceLog(
		serviceLogID, "SRV-000007", vehicleID, "brake pads worn", started,
		&started, &finished, 350, 420.5, "replaced both sides", "", servicelog.Completed, 3,
	)
	require.NoError(t, err)

	serviceRepo := new(MockServiceLogRepository)
	vehicleRepo := new(MockVehicleRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceLogRepository").Return(serviceRepo)
	serviceRepo.On("Get", mock.Anything, serviceLogID).Return(completed, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteServiceCommandHandler(factory, testMaintenanceInterval)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	vehicleRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
