package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrRetireVehicleCommandIsNotConstructed = errors.New(
		"RetireVehicleCommand must be created via NewRetireVehicleCommand constructor",
	)
)

// RetireVehicleCommand removes a vehicle from active service.
// Only an Available vehicle can retire; the record is kept with
// isActive=false and OutOfService status.
type RetireVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetireVehicleCommand creates a command to retire a vehicle.
func NewRetireVehicleCommand(vehicleID kernel.UUID) (RetireVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return RetireVehicleCommand{}, err
	}

	return RetireVehicleCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRetireVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle to retire.
func (c RetireVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
