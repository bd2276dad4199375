package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrDispatchTripCommandIsNotConstructed = errors.New(
		"DispatchTripCommand must be created via NewDispatchTripCommand constructor",
	)
)

// DispatchTripCommand puts a draft trip in flight.
// Dispatching claims the vehicle and the driver atomically with the trip
// transition: either all three records move, or none do.
type DispatchTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchTripCommand creates a command to dispatch a trip.
func NewDispatchTripCommand(tripID kernel.UUID) (DispatchTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return DispatchTripCommand{}, err
	}

	return DispatchTripCommand{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchTripCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTripCommandIsNotConstructed)
}

// TripID returns the trip to dispatch.
func (c DispatchTripCommand) TripID() kernel.UUID {
	return c.tripID
}
