package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrDeleteServiceCommandIsNotConstructed = errors.New(
		"DeleteServiceCommand must be created via NewDeleteServiceCommand constructor",
	)
)

// DeleteServiceCommand removes a service log that never started.
// Logs that left New stay on record forever.
type DeleteServiceCommand struct { //nolint:recvcheck //using for validation
	serviceLogID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteServiceCommand creates a command to delete a service log.
func NewDeleteServiceCommand(serviceLogID kernel.UUID) (DeleteServiceCommand, error) {
	if err := serviceLogID.Validate(); err != nil {
		return DeleteServiceCommand{}, err
	}

	return DeleteServiceCommand{
		serviceLogID: serviceLogID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceCommandIsNotConstructed)
}

// ServiceLogID returns the service log to delete.
func (c DeleteServiceCommand) ServiceLogID() kernel.UUID {
	return c.serviceLogID
}
