package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
)

// RegisterVehicleCommand adds a new vehicle to the fleet.
// The vehicle starts Available and active, ready to be claimed by trips.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID                kernel.UUID
	plate                    string
	model                    string
	maxLoadCapacityKg        int
	region                   string
	odometerKm               float64
	fuelEfficiencyKmPerLiter float64

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle.
// Validates that the ID is valid, the plate and model are non-empty, the
// capacity is positive and the odometer is non-negative.
func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	plate string,
	model string,
	maxLoadCapacityKg int,
	region string,
	odometerKm float64,
	fuelEfficiencyKmPerLiter float64,
) (RegisterVehicleCommand, error) {
	cmd := RegisterVehicleCommand{
		region:                   region,
		fuelEfficiencyKmPerLiter: fuelEfficiencyKmPerLiter,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
		cmd.setModel(model),
		cmd.setCapacity(maxLoadCapacityKg),
		cmd.setOdometer(odometerKm),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the registration plate.
func (c RegisterVehicleCommand) Plate() string {
	return c.plate
}

// Model returns the vehicle model.
func (c RegisterVehicleCommand) Model() string {
	return c.model
}

// MaxLoadCapacityKg returns the maximum cargo weight.
func (c RegisterVehicleCommand) MaxLoadCapacityKg() int {
	return c.maxLoadCapacityKg
}

// Region returns the operating region.
func (c RegisterVehicleCommand) Region() string {
	return c.region
}

// OdometerKm returns the initial odometer reading.
func (c RegisterVehicleCommand) OdometerKm() float64 {
	return c.odometerKm
}

// FuelEfficiencyKmPerLiter returns the initial fuel efficiency figure.
func (c RegisterVehicleCommand) FuelEfficiencyKmPerLiter() float64 {
	return c.fuelEfficiencyKmPerLiter
}

func (c *RegisterVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *RegisterVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	c.plate = plate
	return nil
}

func (c *RegisterVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.model = model
	return nil
}

func (c *RegisterVehicleCommand) setCapacity(capacityKg int) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidError("maxLoadCapacityKg must be greater than 0")
	}
	c.maxLoadCapacityKg = capacityKg
	return nil
}

func (c *RegisterVehicleCommand) setOdometer(odometerKm float64) error {
	if odometerKm < 0 {
		return errs.NewValueIsInvalidError("odometerKm must not be negative")
	}
	c.odometerKm = odometerKm
	return nil
}
