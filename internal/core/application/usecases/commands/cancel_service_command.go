package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCancelServiceCommandIsNotConstructed = errors.New(
		"CancelServiceCommand must be created via NewCancelServiceCommand constructor",
	)
)

// CancelServiceCommand aborts a maintenance record that is not terminal.
// Cancelling releases the vehicle without touching its maintenance dates.
type CancelServiceCommand struct { //nolint:recvcheck //using for validation
	serviceLogID kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewCancelServiceCommand creates a command to cancel a service.
func NewCancelServiceCommand(serviceLogID kernel.UUID, reason string) (CancelServiceCommand, error) {
	if err := serviceLogID.Validate(); err != nil {
		return CancelServiceCommand{}, err
	}

	return CancelServiceCommand{
		serviceLogID: serviceLogID,
		reason:       reason,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelServiceCommand) Validate() error {
	return c.guard.Validate(ErrCancelServiceCommandIsNotConstructed)
}

// ServiceLogID returns the service log to cancel.
func (c CancelServiceCommand) ServiceLogID() kernel.UUID {
	return c.serviceLogID
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelServiceCommand) Reason() string {
	return c.reason
}
