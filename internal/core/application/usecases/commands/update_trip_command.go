package commands

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrUpdateTripCommandIsNotConstructed = errors.New(
		"UpdateTripCommand must be created via NewUpdateTripCommand constructor",
	)
)

// UpdateTripCommand replaces the editable fields of a Draft trip.
// Trips that left Draft are immutable apart from their lifecycle
// transitions.
type UpdateTripCommand struct { //nolint:recvcheck //using for validation
	tripID             kernel.UUID
	origin             string
	destination        string
	cargoWeightKg      int
	scheduledStartTime time.Time

	guard guard.ConstructorGuard
}

// NewUpdateTripCommand creates a command to edit a draft trip.
func NewUpdateTripCommand(
	tripID kernel.UUID,
	origin string,
	destination string,
	cargoWeightKg int,
	scheduledStartTime time.Time,
) (UpdateTripCommand, error) {
	cmd := UpdateTripCommand{
		scheduledStartTime: scheduledStartTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setRoute(origin, destination),
		cmd.setCargoWeight(cargoWeightKg),
	); err != nil {
		return UpdateTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTripCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTripCommandIsNotConstructed)
}

// TripID returns the trip to edit.
func (c UpdateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// Origin returns the new trip origin.
func (c UpdateTripCommand) Origin() string {
	return c.origin
}

// Destination returns the new trip destination.
func (c UpdateTripCommand) Destination() string {
	return c.destination
}

// CargoWeightKg returns the new cargo weight.
func (c UpdateTripCommand) CargoWeightKg() int {
	return c.cargoWeightKg
}

// ScheduledStartTime returns the new planned departure time.
func (c UpdateTripCommand) ScheduledStartTime() time.Time {
	return c.scheduledStartTime
}

func (c *UpdateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *UpdateTripCommand) setRoute(origin, destination string) error {
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

func (c *UpdateTripCommand) setCargoWeight(cargoWeightKg int) error {
	if cargoWeightKg <= 0 {
		return errs.NewValueIsRequiredError("cargoWeightKg")
	}
	c.cargoWeightKg = cargoWeightKg
	return nil
}
