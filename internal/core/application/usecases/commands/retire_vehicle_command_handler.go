package commands

import (
	"context"

	"fleetcore/internal/core/domain/model/vehicle"
)

// RetireVehicleCommandHandler handles vehicle retirement.
type RetireVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRetireVehicleCommandHandler creates a handler for vehicle retirement.
func NewRetireVehicleCommandHandler(uowFactory VehicleUoWFactory) RetireVehicleCommandHandler {
	return RetireVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reloads the vehicle inside the transaction, applies the retirement
// transition and persists the result under the optimistic version check.
func (h RetireVehicleCommandHandler) Handle(ctx context.Context, cmd RetireVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	if err = veh.Retire(); err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return veh, nil
}
