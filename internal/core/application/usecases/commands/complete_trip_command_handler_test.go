package commands_test

import (
	"testing"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tripID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	finalOdometer := 125600.0
	fuel := 180.5
	fuelCost := 320.75
	revenue := 4500.0
	cmd, err := commands.NewCompleteTripCommand(tripID, &finalOdometer, &fuel, &fuelCost, &revenue)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)

	var updatedVehicle *vehicle.Vehicle
	var updatedDriver *driver.Driver

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	tripRepo.On("Get", mock.Anything, tripID).Return(dispatchedTrip(t, tripID, vehicleID, driverID), nil).Once()
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(onTripVehicle(t, vehicleID, tripID, driverID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onTripDriver(t, driverID), nil).Once()
	tripRepo.On("Update", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil).Once()
	vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) { updatedVehicle = args.Get(1).(*vehicle.Vehicle) }).
		Return(nil).Once()
	driverRepo.On("Update", mock.Anything, mock.AnythingOfType("*driver.Driver")).
		Run(func(args mock.Arguments) { updatedDriver = args.Get(1).(*driver.Driver) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, trip.Completed, result.Status())
	require.NotNil(t, result.ActualEndTime())
	require.InDelta(t, 180.5, result.FuelConsumedLiters(), 0.001)
	require.InDelta(t, 4500.0, result.Revenue(), 0.001)

	require.NotNil(t, updatedVehicle)
	require.Equal(t, vehicle.Available, updatedVehicle.Status())
	require.Nil(t, updatedVehicle.CurrentTrip())
	require.InDelta(t, 125600.0, updatedVehicle.OdometerKm(), 0.001)

	require.NotNil(t, updatedDriver)
	require.Equal(t, driver.OnDuty, updatedDriver.DutyStatus())
	require.Equal(t, 4, updatedDriver.CompletedTrips())
	uow.AssertExpectations(t)
}

func TestCompleteTripCommandHandler_Handle_DraftTrip(t *testing.T) {
	ctx := t.Context()
	tripID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewCompleteTripCommand(tripID, nil, nil, nil, nil)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	tripRepo.On("Get", mock.Anything, tripID).Return(draftTrip(t, tripID, vehicleID, driverID), nil).Once()
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onDutyDriver(t, driverID), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	tripRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteTripCommandHandler_Handle_TripNotFound(t *testing.T) {
	ctx := t.Context()
	tripID := kernel.NewUUID()
	cmd, err := commands.NewCompleteTripCommand(tripID, nil, nil, nil, nil)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo)
	tripRepo.On("Get", mock.Anything, tripID).Return(nil, errs.NewObjectNotFoundError("trip", tripID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTripCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Nil(t, result)
}
