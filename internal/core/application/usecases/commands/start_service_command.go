package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrStartServiceCommandIsNotConstructed = errors.New(
		"StartServiceCommand must be created via NewStartServiceCommand constructor",
	)
)

// StartServiceCommand moves a New service log to InProgress.
type StartServiceCommand struct { //nolint:recvcheck //using for validation
	serviceLogID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartServiceCommand creates a command to start a service.
func NewStartServiceCommand(serviceLogID kernel.UUID) (StartServiceCommand, error) {
	if err := serviceLogID.Validate(); err != nil {
		return StartServiceCommand{}, err
	}

	return StartServiceCommand{
		serviceLogID: serviceLogID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartServiceCommand) Validate() error {
	return c.guard.Validate(ErrStartServiceCommandIsNotConstructed)
}

// ServiceLogID returns the service log to start.
func (c StartServiceCommand) ServiceLogID() kernel.UUID {
	return c.serviceLogID
}
