package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrRecordExpenseCommandIsNotConstructed = errors.New(
		"RecordExpenseCommand must be created via NewRecordExpenseCommand constructor",
	)
)

// RecordExpenseCommand books a fuel or miscellaneous expense.
// A fuel expense carries liters and costPerLiter and may link a trip; a
// miscellaneous expense carries expenseType and totalCost. The optional
// odometer reading folds the vehicle's telemetry update into the same
// atomic unit as the expense insert.
type RecordExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseLogID      kernel.UUID
	vehicleID         kernel.UUID
	driverID          kernel.UUID
	tripID            *kernel.UUID
	category          expenselog.Category
	liters            float64
	costPerLiter      float64
	expenseType       string
	totalCost         float64
	odometerReadingKm *float64
	description       string

	guard guard.ConstructorGuard
}

// NewRecordExpenseCommand creates a command to record an expense.
// Per-category field requirements are enforced by the expense log
// constructors; here only the identifiers, the category and the odometer
// reading are checked.
func NewRecordExpenseCommand(
	expenseLogID kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	tripID *kernel.UUID,
	category expenselog.Category,
	liters float64,
	costPerLiter float64,
	expenseType string,
	totalCost float64,
	odometerReadingKm *float64,
	description string,
) (RecordExpenseCommand, error) {
	cmd := RecordExpenseCommand{
		tripID:            tripID,
		category:          category,
		liters:            liters,
		costPerLiter:      costPerLiter,
		expenseType:       expenseType,
		totalCost:         totalCost,
		odometerReadingKm: odometerReadingKm,
		description:       description,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpenseLogID(expenseLogID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		category.Validate(),
		validateOdometerReading(odometerReadingKm),
	); err != nil {
		return RecordExpenseCommand{}, err
	}

	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return RecordExpenseCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordExpenseCommand) Validate() error {
	return c.guard.Validate(ErrRecordExpenseCommandIsNotConstructed)
}

// ExpenseLogID returns the identifier for the new expense log.
func (c RecordExpenseCommand) ExpenseLogID() kernel.UUID {
	return c.expenseLogID
}

// VehicleID returns the vehicle the expense belongs to.
func (c RecordExpenseCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the driver who incurred the expense.
func (c RecordExpenseCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TripID returns the linked trip, or nil.
func (c RecordExpenseCommand) TripID() *kernel.UUID {
	return c.tripID
}

// Category returns the expense category.
func (c RecordExpenseCommand) Category() expenselog.Category {
	return c.category
}

// Liters returns the fuel volume for a fuel expense.
func (c RecordExpenseCommand) Liters() float64 {
	return c.liters
}

// CostPerLiter returns the fuel price for a fuel expense.
func (c RecordExpenseCommand) CostPerLiter() float64 {
	return c.costPerLiter
}

// ExpenseType returns the kind of a miscellaneous expense.
func (c RecordExpenseCommand) ExpenseType() string {
	return c.expenseType
}

// TotalCost returns the cost of a miscellaneous expense.
func (c RecordExpenseCommand) TotalCost() float64 {
	return c.totalCost
}

// OdometerReadingKm returns the odometer reading at expense time, or nil
// when no reading was taken.
func (c RecordExpenseCommand) OdometerReadingKm() *float64 {
	return c.odometerReadingKm
}

// Description returns the free-form description, possibly empty.
func (c RecordExpenseCommand) Description() string {
	return c.description
}

func (c *RecordExpenseCommand) setExpenseLogID(expenseLogID kernel.UUID) error {
	if err := expenseLogID.Validate(); err != nil {
		return err
	}
	c.expenseLogID = expenseLogID
	return nil
}

func (c *RecordExpenseCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *RecordExpenseCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func validateOdometerReading(readingKm *float64) error {
	if readingKm != nil && *readingKm < 0 {
		return errs.NewValueIsInvalidError("odometerReadingKm")
	}
	return nil
}
