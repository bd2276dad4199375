package commands_test

import (
	"testing"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/core/ports"
	"fleetcore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordExpenseCommandHandler_Handle_FuelExpenseLinkedToTrip(t *testing.T) {
	ctx := t.Context()
	expenseLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	tripID := kernel.NewUUID()
	reading := 125300.0
	cmd, err := commands.NewRecordExpenseCommand(
		expenseLogID, vehicleID, driverID, &tripID,
		expenselog.Fuel, 60, 1.85, "", 0, &reading, "refuel at depot",
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	expenseRepo := new(MockExpenseLogRepository)
	sequences := new(MockSequenceGenerator)

	var updatedVehicle *vehicle.Vehicle
	var updatedTrip *trip.Trip

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("ExpenseLogRepository").Return(expenseRepo)
	uow.On("Sequences").Return(sequences)
	vehicleRepo.On("Get", mock.Anything, vehicleID).
		Return(onTripVehicle(t, vehicleID, tripID, driverID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onTripDriver(t, driverID), nil).Once()
	sequences.On("Next", mock.Anything, ports.ExpenseLogSequence).Return(int64(15), nil).Once()
	vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
		Run(func(args mock.Arguments) { updatedVehicle = args.Get(1).(*vehicle.Vehicle) }).
		Return(nil).Once()
	tripRepo.On("Get", mock.Anything, tripID).
		Return(dispatchedTrip(t, tripID, vehicleID, driverID), nil).Once()
	tripRepo.On("Update", mock.Anything, mock.AnythingOfType("*trip.Trip")).
		Run(func(args mock.Arguments) { updatedTrip = args.Get(1).(*trip.Trip) }).
		Return(nil).Once()
	expenseRepo.On("Add", mock.Anything, mock.AnythingOfType("*expenselog.ExpenseLog")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "EXP-000015", result.Number())
	require.Equal(t, expenselog.Fuel, result.Category())
	require.InDelta(t, 111.0, result.TotalCost(), 0.001)

	require.NotNil(t, updatedVehicle)
	require.InDelta(t, 125300.0, updatedVehicle.OdometerKm(), 0.001)
	// 300km over 60 litres.
	require.InDelta(t, 5.0, updatedVehicle.FuelEfficiencyKmPerLiter(), 0.001)

	require.NotNil(t, updatedTrip)
	require.InDelta(t, 60.0, updatedTrip.FuelConsumedLiters(), 0.001)
	require.InDelta(t, 111.0, updatedTrip.FuelCost(), 0.001)
	uow.AssertExpectations(t)
}

func TestRecordExpenseCommandHandler_Handle_MiscExpenseWithoutOdometer(t *testing.T) {
	ctx := t.Context()
	expenseLogID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewRecordExpenseCommand(
		expenseLogID, vehicleID, driverID, nil,
		expenselog.Misc, 0, 0, "toll", 42.5, nil, "highway toll",
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	expenseRepo := new(MockExpenseLogRepository)
	sequences := new(MockSequenceGenerator)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("ExpenseLogRepository").Return(expenseRepo)
	uow.On("Sequences").Return(sequences)
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onDutyDriver(t, driverID), nil).Once()
	sequences.On("Next", mock.Anything, ports.ExpenseLogSequence).Return(int64(16), nil).Once()
	expenseRepo.On("Add", mock.Anything, mock.AnythingOfType("*expenselog.ExpenseLog")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, expenselog.Misc, result.Category())
	require.Equal(t, "toll", result.ExpenseType())
	require.InDelta(t, 42.5, result.TotalCost(), 0.001)
	// No reading reported, the vehicle stays untouched.
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	tripRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRecordExpenseCommandHandler_Handle_ReadingBelowOdometer_Rejected(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	// An explicit reading of zero against a vehicle at 125000km must be
	// rejected just like any other reading below the current odometer.
	reading := 0.0
	cmd, err := commands.NewRecordExpenseCommand(
		kernel.NewUUID(), vehicleID, driverID, nil,
		expenselog.Fuel, 60, 1.85, "", 0, &reading, "",
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	expenseRepo := new(MockExpenseLogRepository)
	sequences := new(MockSequenceGenerator)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Sequences").Return(sequences)
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onDutyDriver(t, driverID), nil).Once()
	sequences.On("Next", mock.Anything, ports.ExpenseLogSequence).Return(int64(18), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	expenseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordExpenseCommandHandler_Handle_TripVehicleMismatch(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	tripID := kernel.NewUUID()
	otherVehicleID := kernel.NewUUID()
	cmd, err := commands.NewRecordExpenseCommand(
		kernel.NewUUID(), vehicleID, driverID, &tripID,
		expenselog.Fuel, 60, 1.85, "", 0, nil, "",
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	expenseRepo := new(MockExpenseLogRepository)
	sequences := new(MockSequenceGenerator)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("Sequences").Return(sequences)
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(onDutyDriver(t, driverID), nil).Once()
	sequences.On("Next", mock.Anything, ports.ExpenseLogSequence).Return(int64(17), nil).Once()
	tripRepo.On("Get", mock.Anything, tripID).
		Return(dispatchedTrip(t, tripID, otherVehicleID, driverID), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Nil(t, result)
	tripRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	expenseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordExpenseCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewRecordExpenseCommand(
		kernel.NewUUID(), vehicleID, driverID, nil,
		expenselog.Misc, 0, 0, "toll", 42.5, nil, "",
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	sequences := new(MockSequenceGenerator)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	vehicleRepo.On("Get", mock.Anything, vehicleID).Return(availableVehicle(t, vehicleID), nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).
		Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Nil(t, result)
	sequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
}
