package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrChangeDriverDutyCommandIsNotConstructed = errors.New(
		"ChangeDriverDutyCommand must be created via NewChangeDriverDutyCommand constructor",
	)
)

// ChangeDriverDutyCommand moves a driver on or off duty.
// A driver that is OnTrip cannot change duty until the trip ends.
type ChangeDriverDutyCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	onDuty   bool

	guard guard.ConstructorGuard
}

// NewChangeDriverDutyCommand creates a command to change a driver's duty
// status. onDuty true requests OnDuty, false requests OffDuty.
func NewChangeDriverDutyCommand(driverID kernel.UUID, onDuty bool) (ChangeDriverDutyCommand, error) {
	if err := driverID.Validate(); err != nil {
		return ChangeDriverDutyCommand{}, err
	}

	return ChangeDriverDutyCommand{
		driverID: driverID,
		onDuty:   onDuty,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverDutyCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverDutyCommandIsNotConstructed)
}

// DriverID returns the driver to change.
func (c ChangeDriverDutyCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OnDuty reports whether the driver should go on duty.
func (c ChangeDriverDutyCommand) OnDuty() bool {
	return c.onDuty
}
