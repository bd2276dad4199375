package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCancelTripCommandIsNotConstructed = errors.New(
		"CancelTripCommand must be created via NewCancelTripCommand constructor",
	)
)

// CancelTripCommand aborts a trip from any non-terminal status.
// The reason is optional and stored verbatim for reporting.
type CancelTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	reason string

	guard guard.ConstructorGuard
}

// NewCancelTripCommand creates a command to cancel a trip.
func NewCancelTripCommand(tripID kernel.UUID, reason string) (CancelTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CancelTripCommand{}, err
	}

	return CancelTripCommand{
		tripID: tripID,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTripCommand) Validate() error {
	return c.guard.Validate(ErrCancelTripCommandIsNotConstructed)
}

// TripID returns the trip to cancel.
func (c CancelTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelTripCommand) Reason() string {
	return c.reason
}
