package commands

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
)

// RegisterDriverCommand adds a new driver to the fleet.
// The driver starts OffDuty and active.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenceNumber string
	licenceExpiry *time.Time

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
// licenceExpiry may be nil when the expiry date is not tracked.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	licenceNumber string,
	licenceExpiry *time.Time,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		licenceExpiry: licenceExpiry,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setLicenceNumber(licenceNumber),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// LicenceNumber returns the driving licence number.
func (c RegisterDriverCommand) LicenceNumber() string {
	return c.licenceNumber
}

// LicenceExpiry returns the licence expiry date, or nil.
func (c RegisterDriverCommand) LicenceExpiry() *time.Time {
	return c.licenceExpiry
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setLicenceNumber(licenceNumber string) error {
	if licenceNumber == "" {
		return errs.NewValueIsRequiredError("licenceNumber")
	}
	c.licenceNumber = licenceNumber
	return nil
}
