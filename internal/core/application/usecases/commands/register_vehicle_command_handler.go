package commands

import (
	"context"

	"fleetcore/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler handles fleet registration of new vehicles.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the vehicle aggregate and persists it transactionally.
// Returns the registered vehicle snapshot.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Plate(),
		cmd.Model(),
		cmd.MaxLoadCapacityKg(),
		cmd.Region(),
		cmd.OdometerKm(),
		cmd.FuelEfficiencyKmPerLiter(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newVehicle, nil
}
