package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrDeleteTripCommandIsNotConstructed = errors.New(
		"DeleteTripCommand must be created via NewDeleteTripCommand constructor",
	)
)

// DeleteTripCommand removes a Draft trip.
// Trips that left Draft stay on record forever.
type DeleteTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTripCommand creates a command to delete a draft trip.
func NewDeleteTripCommand(tripID kernel.UUID) (DeleteTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return DeleteTripCommand{}, err
	}

	return DeleteTripCommand{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTripCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTripCommandIsNotConstructed)
}

// TripID returns the trip to delete.
func (c DeleteTripCommand) TripID() kernel.UUID {
	return c.tripID
}
