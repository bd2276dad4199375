package commands

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCreateServiceLogCommandIsNotConstructed = errors.New(
		"CreateServiceLogCommand must be created via NewCreateServiceLogCommand constructor",
	)
)

// CreateServiceLogCommand opens a maintenance record for a vehicle.
// Opening the record sends the vehicle InShop in the same atomic unit.
type CreateServiceLogCommand struct { //nolint:recvcheck //using for validation
	serviceLogID  kernel.UUID
	vehicleID     kernel.UUID
	issue         string
	scheduledDate time.Time
	estimatedCost float64

	guard guard.ConstructorGuard
}

// NewCreateServiceLogCommand creates a command to open a service log.
func NewCreateServiceLogCommand(
	serviceLogID kernel.UUID,
	vehicleID kernel.UUID,
	issue string,
	scheduledDate time.Time,
	estimatedCost float64,
) (CreateServiceLogCommand, error) {
	cmd := CreateServiceLogCommand{
		scheduledDate: scheduledDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceLogID(serviceLogID),
		cmd.setVehicleID(vehicleID),
		cmd.setIssue(issue),
		cmd.setEstimatedCost(estimatedCost),
	); err != nil {
		return CreateServiceLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceLogCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceLogCommandIsNotConstructed)
}

// ServiceLogID returns the identifier for the new service log.
func (c CreateServiceLogCommand) ServiceLogID() kernel.UUID {
	return c.serviceLogID
}

// VehicleID returns the vehicle to service.
func (c CreateServiceLogCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Issue returns the reported problem.
func (c CreateServiceLogCommand) Issue() string {
	return c.issue
}

// ScheduledDate returns when the service is planned.
func (c CreateServiceLogCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// EstimatedCost returns the expected cost of the service.
func (c CreateServiceLogCommand) EstimatedCost() float64 {
	return c.estimatedCost
}

func (c *CreateServiceLogCommand) setServiceLogID(serviceLogID kernel.UUID) error {
	if err := serviceLogID.Validate(); err != nil {
		return err
	}
	c.serviceLogID = serviceLogID
	return nil
}

func (c *CreateServiceLogCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateServiceLogCommand) setIssue(issue string) error {
	if issue == "" {
		return errs.NewValueIsRequiredError("issue")
	}
	c.issue = issue
	return nil
}

func (c *CreateServiceLogCommand) setEstimatedCost(estimatedCost float64) error {
	if estimatedCost < 0 {
		return errs.NewValueIsInvalidError("estimatedCost")
	}
	c.estimatedCost = estimatedCost
	return nil
}
