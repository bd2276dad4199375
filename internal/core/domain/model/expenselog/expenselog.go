// Package expenselog provides the append-only ExpenseLog entity for fuel and
// miscellaneous expenses.
//
// An expense log never transitions state itself, but recording one mutates
// the vehicle's odometer and fuel efficiency and, when linked to a trip, the
// trip's fuel totals. Those side effects belong to the same atomic unit as
// the insert, which is why expense creation goes through a command handler
// rather than a plain repository insert.
package expenselog

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

// Domain errors for expense log operations.
var (
	// ErrNumberIsRequired is returned when creating an expense without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrLitersAreRequired is returned when a fuel expense has no positive liters value.
	ErrLitersAreRequired = errs.NewValueIsRequiredError("liters must be greater than 0 for a fuel expense")
	// ErrCostPerLiterIsRequired is returned when a fuel expense has no positive cost per liter.
	ErrCostPerLiterIsRequired = errs.NewValueIsRequiredError("costPerLiter must be greater than 0 for a fuel expense")
	// ErrExpenseTypeIsRequired is returned when a misc expense has no type.
	ErrExpenseTypeIsRequired = errs.NewValueIsRequiredError("expenseType is required for a misc expense")
	// ErrTotalCostIsRequired is returned when a misc expense has no positive total cost.
	ErrTotalCostIsRequired = errs.NewValueIsRequiredError("totalCost must be greater than 0 for a misc expense")
	// ErrOdometerReadingIsInvalid is returned when the odometer reading is negative.
	ErrOdometerReadingIsInvalid = errs.NewValueIsInvalidError("odometerReadingKm must not be negative")
	// ErrExpenseLogIsNotConstructed is returned when using an improperly initialized ExpenseLog.
	ErrExpenseLogIsNotConstructed = errors.New("ExpenseLog must be created via NewFuelExpense, NewMiscExpense, or RestoreExpenseLog")
)

// Category distinguishes fuel fill-ups from miscellaneous expenses.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory Category = iota

	// Fuel is a fuel fill-up. Requires liters and cost per liter; the total
	// cost is derived.
	Fuel

	// Misc is any other expense. Requires an expense type and a total cost.
	Misc
)

// Validate checks if the Category value is one of the defined categories.
func (c Category) Validate() error {
	if c != Fuel && c != Misc {
		return errs.NewValueIsInvalidError("category must be Fuel or Misc")
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case Fuel:
		return "Fuel"
	case Misc:
		return "Misc"
	default:
		return "Unknown"
	}
}

// ExpenseLog is an append-only record of money spent on a vehicle.
// It captures the odometer reading at the time of entry, which is what makes
// the vehicle's odometer monotonically traceable through its expense history.
type ExpenseLog struct {
	id     kernel.UUID
	number string

	vehicleID kernel.UUID
	driverID  kernel.UUID
	tripID    *kernel.UUID

	category Category

	liters       float64
	costPerLiter float64
	totalCost    float64
	expenseType  string

	odometerReadingKm float64
	description       string
	recordedAt        time.Time

	guard guard.ConstructorGuard
}

// NewFuelExpense records a fuel fill-up.
// liters and costPerLiter are required and positive; totalCost is derived.
// tripID may reference the trip the fuel was burned on, or be nil.
func NewFuelExpense(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	tripID *kernel.UUID,
	liters float64,
	costPerLiter float64,
	odometerReadingKm float64,
	description string,
	recordedAt time.Time,
) (*ExpenseLog, error) {
	if liters <= 0 {
		return nil, ErrLitersAreRequired
	}
	if costPerLiter <= 0 {
		return nil, ErrCostPerLiterIsRequired
	}

	e := &ExpenseLog{
		category:     Fuel,
		tripID:       tripID,
		liters:       liters,
		costPerLiter: costPerLiter,
		totalCost:    liters * costPerLiter,
		description:  description,
		recordedAt:   recordedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setNumber(number),
		e.setVehicleID(vehicleID),
		e.setDriverID(driverID),
		e.setOdometerReading(odometerReadingKm),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// NewMiscExpense records a non-fuel expense.
// expenseType and a positive totalCost are required.
func NewMiscExpense(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	expenseType string,
	totalCost float64,
	odometerReadingKm float64,
	description string,
	recordedAt time.Time,
) (*ExpenseLog, error) {
	if expenseType == "" {
		return nil, ErrExpenseTypeIsRequired
	}
	if totalCost <= 0 {
		return nil, ErrTotalCostIsRequired
	}

	e := &ExpenseLog{
		category:    Misc,
		expenseType: expenseType,
		totalCost:   totalCost,
		description: description,
		recordedAt:  recordedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setNumber(number),
		e.setVehicleID(vehicleID),
		e.setDriverID(driverID),
		e.setOdometerReading(odometerReadingKm),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreExpenseLog reconstructs an ExpenseLog from persistent storage.
func RestoreExpenseLog(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	tripID *kernel.UUID,
	category Category,
	liters float64,
	costPerLiter float64,
	totalCost float64,
	expenseType string,
	odometerReadingKm float64,
	description string,
	recordedAt time.Time,
) (*ExpenseLog, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	e := &ExpenseLog{
		category:     category,
		tripID:       tripID,
		liters:       liters,
		costPerLiter: costPerLiter,
		totalCost:    totalCost,
		expenseType:  expenseType,
		description:  description,
		recordedAt:   recordedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setNumber(number),
		e.setVehicleID(vehicleID),
		e.setDriverID(driverID),
		e.setOdometerReading(odometerReadingKm),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the ExpenseLog was created through a constructor.
func (e *ExpenseLog) Validate() error {
	if e == nil {
		return ErrExpenseLogIsNotConstructed
	}
	return e.guard.Validate(ErrExpenseLogIsNotConstructed)
}

// ID returns the expense log's unique identifier.
func (e *ExpenseLog) ID() kernel.UUID {
	return e.id
}

// Number returns the human-readable expense number, e.g. "EXP-000103".
func (e *ExpenseLog) Number() string {
	return e.number
}

// VehicleID returns the vehicle the expense was recorded against.
func (e *ExpenseLog) VehicleID() kernel.UUID {
	return e.vehicleID
}

// DriverID returns the driver who recorded the expense.
func (e *ExpenseLog) DriverID() kernel.UUID {
	return e.driverID
}

// TripID returns the linked trip, or nil for an unlinked expense.
func (e *ExpenseLog) TripID() *kernel.UUID {
	return e.tripID
}

// Category returns the expense category.
func (e *ExpenseLog) Category() Category {
	return e.category
}

// Liters returns the fuel volume for a fuel expense, zero otherwise.
func (e *ExpenseLog) Liters() float64 {
	return e.liters
}

// CostPerLiter returns the fuel unit price for a fuel expense, zero otherwise.
func (e *ExpenseLog) CostPerLiter() float64 {
	return e.costPerLiter
}

// TotalCost returns the total amount of the expense.
func (e *ExpenseLog) TotalCost() float64 {
	return e.totalCost
}

// ExpenseType returns the free-form type of a misc expense, empty otherwise.
func (e *ExpenseLog) ExpenseType() string {
	return e.expenseType
}

// OdometerReadingKm returns the vehicle odometer captured at entry time.
func (e *ExpenseLog) OdometerReadingKm() float64 {
	return e.odometerReadingKm
}

// Description returns the free-form description.
func (e *ExpenseLog) Description() string {
	return e.description
}

// RecordedAt returns when the expense was recorded.
func (e *ExpenseLog) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *ExpenseLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *ExpenseLog) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	e.number = number
	return nil
}

func (e *ExpenseLog) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	e.vehicleID = vehicleID
	return nil
}

func (e *ExpenseLog) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	e.driverID = driverID
	return nil
}

func (e *ExpenseLog) setOdometerReading(readingKm float64) error {
	if readingKm < 0 {
		return ErrOdometerReadingIsInvalid
	}
	e.odometerReadingKm = readingKm
	return nil
}
