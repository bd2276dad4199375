package commands

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New(
		"CreateTripCommand must be created via NewCreateTripCommand constructor",
	)
)

// CreateTripCommand plans a new trip in Draft status.
// The trip claims nothing yet; the vehicle and driver are merely validated
// as assignable at creation time and re-checked at dispatch.
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID             kernel.UUID
	vehicleID          kernel.UUID
	driverID           kernel.UUID
	origin             string
	destination        string
	cargoWeightKg      int
	scheduledStartTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to plan a trip.
func NewCreateTripCommand(
	tripID kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	origin string,
	destination string,
	cargoWeightKg int,
	scheduledStartTime time.Time,
) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		scheduledStartTime: scheduledStartTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		cmd.setRoute(origin, destination),
		cmd.setCargoWeight(cargoWeightKg),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the identifier for the new trip.
func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// VehicleID returns the vehicle assigned to the trip.
func (c CreateTripCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the driver assigned to the trip.
func (c CreateTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Origin returns the trip origin.
func (c CreateTripCommand) Origin() string {
	return c.origin
}

// Destination returns the trip destination.
func (c CreateTripCommand) Destination() string {
	return c.destination
}

// CargoWeightKg returns the planned cargo weight.
func (c CreateTripCommand) CargoWeightKg() int {
	return c.cargoWeightKg
}

// ScheduledStartTime returns the planned departure time.
func (c CreateTripCommand) ScheduledStartTime() time.Time {
	return c.scheduledStartTime
}

func (c *CreateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateTripCommand) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateTripCommand) setCargoWeight(cargoWeightKg int) error {
	if cargoWeightKg <= 0 {
		return errs.NewValueIsRequiredError("cargoWeightKg")
	}
	c.cargoWeightKg = cargoWeightKg
	return nil
}
