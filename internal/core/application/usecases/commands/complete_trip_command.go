package commands

import (
	"errors"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrCompleteTripCommandIsNotConstructed = errors.New(
		"CompleteTripCommand must be created via NewCompleteTripCommand constructor",
	)
)

// CompleteTripCommand finishes a dispatched trip.
// All readings are optional; absent readings leave the stored values alone.
type CompleteTripCommand struct { //nolint:recvcheck //using for validation
	tripID             kernel.UUID
	finalOdometerKm    *float64
	fuelConsumedLiters *float64
	fuelCost           *float64
	revenue            *float64

	guard guard.ConstructorGuard
}

// NewCompleteTripCommand creates a command to complete a trip.
// Any provided reading must be non-negative.
func NewCompleteTripCommand(
	tripID kernel.UUID,
	finalOdometerKm *float64,
	fuelConsumedLiters *float64,
	fuelCost *float64,
	revenue *float64,
) (CompleteTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CompleteTripCommand{}, err
	}

	if err := errors.Join(
		validateOptionalReading("finalOdometerKm", finalOdometerKm),
		validateOptionalReading("fuelConsumedLiters", fuelConsumedLiters),
		validateOptionalReading("fuelCost", fuelCost),
		validateOptionalReading("revenue", revenue),
	); err != nil {
		return CompleteTripCommand{}, err
	}

	return CompleteTripCommand{
		tripID:             tripID,
		finalOdometerKm:    finalOdometerKm,
		fuelConsumedLiters: fuelConsumedLiters,
		fuelCost:           fuelCost,
		revenue:            revenue,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTripCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTripCommandIsNotConstructed)
}

// TripID returns the trip to complete.
func (c CompleteTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// FinalOdometerKm returns the vehicle's odometer reading at trip end, or nil.
func (c CompleteTripCommand) FinalOdometerKm() *float64 {
	return c.finalOdometerKm
}

// FuelConsumedLiters returns the fuel burned on the trip, or nil.
func (c CompleteTripCommand) FuelConsumedLiters() *float64 {
	return c.fuelConsumedLiters
}

// FuelCost returns the cost of the fuel burned, or nil.
func (c CompleteTripCommand) FuelCost() *float64 {
	return c.fuelCost
}

// Revenue returns the trip revenue, or nil.
func (c CompleteTripCommand) Revenue() *float64 {
	return c.revenue
}

func validateOptionalReading(name string, value *float64) error {
	if value != nil && *value < 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}
