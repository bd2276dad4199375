package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCompleteServiceCommandIsNotConstructed = errors.New(
		"CompleteServiceCommand must be created via NewCompleteServiceCommand constructor",
	)
)

// CompleteServiceCommand closes a maintenance record.
// Completion releases the vehicle and schedules its next maintenance.
type CompleteServiceCommand struct { //nolint:recvcheck //using for validation
	serviceLogID kernel.UUID
	cost         float64
	odometerKm   *float64
	notes        string

	guard guard.ConstructorGuard
}

// NewCompleteServiceCommand creates a command to complete a service.
// odometerKm captures the reading taken in the shop, when one was taken.
func NewCompleteServiceCommand(
	serviceLogID kernel.UUID,
	cost float64,
	odometerKm *float64,
	notes string,
) (CompleteServiceCommand, error) {
	if err := serviceLogID.Validate(); err != nil {
		return CompleteServiceCommand{}, err
	}
	if cost < 0 {
		return CompleteServiceCommand{}, errs.NewValueIsInvalidError("cost")
	}
	if odometerKm != nil && *odometerKm < 0 {
		return CompleteServiceCommand{}, errs.NewValueIsInvalidError("odometerKm")
	}

	return CompleteServiceCommand{
		serviceLogID: serviceLogID,
		cost:         cost,
		odometerKm:   odometerKm,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteServiceCommandIsNotConstructed)
}

// ServiceLogID returns the service log to complete.
func (c CompleteServiceCommand) ServiceLogID() kernel.UUID {
	return c.serviceLogID
}

// Cost returns the actual cost of the service.
func (c CompleteServiceCommand) Cost() float64 {
	return c.cost
}

// OdometerKm returns the odometer reading taken in the shop, or nil.
func (c CompleteServiceCommand) OdometerKm() *float64 {
	return c.odometerKm
}

// Notes returns the mechanic's notes, possibly empty.
func (c CompleteServiceCommand) Notes() string {
	return c.notes
}
