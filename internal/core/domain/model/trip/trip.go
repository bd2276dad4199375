package trip

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

// Domain errors for trip operations.
var (
	// ErrNumberIsRequired is returned when creating a trip without a trip number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrOriginIsRequired is returned when creating a trip without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when creating a trip without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrCargoWeightIsInvalid is returned when the cargo weight is not positive.
	ErrCargoWeightIsInvalid = errs.NewValueIsInvalidError("cargoWeightKg must be greater than 0")
	// ErrTripIsNotConstructed is returned when using an improperly initialized Trip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip")
)

// CompletionPayload carries the optional final readings supplied when a trip
// completes. Nil fields are left unchanged on the trip.
type CompletionPayload struct {
	FuelConsumedLiters *float64
	FuelCost           *float64
	Revenue            *float64
}

// Trip is the aggregate root for a cargo trip.
// A trip references one vehicle and one driver but owns neither: while
// Dispatched it is their exclusive claim, and completing or cancelling the
// trip is what releases them.
type Trip struct {
	id     kernel.UUID
	number string

	vehicleID kernel.UUID
	driverID  kernel.UUID

	origin        string
	destination   string
	cargoWeightKg int

	scheduledStartTime time.Time
	actualStartTime    *time.Time
	actualEndTime      *time.Time

	status Status

	fuelConsumedLiters float64
	fuelCost           float64
	revenue            float64
	cancelReason       string

	// version is the optimistic concurrency token maintained by storage.
	version int

	guard guard.ConstructorGuard
}

// NewTrip creates a trip in Draft status.
// The trip number comes from the sequence service and is assigned exactly
// once, in the same atomic unit as the insert.
func NewTrip(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	origin string,
	destination string,
	cargoWeightKg int,
	scheduledStartTime time.Time,
) (*Trip, error) {
	t := &Trip{
		status:             Draft,
		scheduledStartTime: scheduledStartTime,
		version:            1,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setVehicleID(vehicleID),
		t.setDriverID(driverID),
		t.setRoute(origin, destination),
		t.setCargoWeight(cargoWeightKg),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip from persistent storage.
func RestoreTrip(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	origin string,
	destination string,
	cargoWeightKg int,
	scheduledStartTime time.Time,
	actualStartTime *time.Time,
	actualEndTime *time.Time,
	status Status,
	fuelConsumedLiters float64,
	fuelCost float64,
	revenue float64,
	cancelReason string,
	version int,
) (*Trip, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	t := &Trip{
		status:             status,
		scheduledStartTime: scheduledStartTime,
		actualStartTime:    actualStartTime,
		actualEndTime:      actualEndTime,
		fuelConsumedLiters: fuelConsumedLiters,
		fuelCost:           fuelCost,
		revenue:            revenue,
		cancelReason:       cancelReason,
		version:            version,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setVehicleID(vehicleID),
		t.setDriverID(driverID),
		t.setRoute(origin, destination),
		t.setCargoWeight(cargoWeightKg),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Trip was created through a constructor.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// IsEqual compares two trips by identifier.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// Number returns the human-readable trip number, e.g. "TRP-000042".
func (t *Trip) Number() string {
	return t.number
}

// VehicleID returns the referenced vehicle's identifier.
func (t *Trip) VehicleID() kernel.UUID {
	return t.vehicleID
}

// DriverID returns the referenced driver's identifier.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// Origin returns the trip origin.
func (t *Trip) Origin() string {
	return t.origin
}

// Destination returns the trip destination.
func (t *Trip) Destination() string {
	return t.destination
}

// CargoWeightKg returns the cargo weight.
func (t *Trip) CargoWeightKg() int {
	return t.cargoWeightKg
}

// ScheduledStartTime returns when the trip is planned to start.
func (t *Trip) ScheduledStartTime() time.Time {
	return t.scheduledStartTime
}

// ActualStartTime returns when the trip was dispatched, or nil while Draft.
func (t *Trip) ActualStartTime() *time.Time {
	return t.actualStartTime
}

// ActualEndTime returns when the trip reached a terminal status, or nil.
func (t *Trip) ActualEndTime() *time.Time {
	return t.actualEndTime
}

// Status returns the current lifecycle status.
func (t *Trip) Status() Status {
	return t.status
}

// FuelConsumedLiters returns the fuel consumed so far, accumulated from
// completion readings and linked fuel expenses.
func (t *Trip) FuelConsumedLiters() float64 {
	return t.fuelConsumedLiters
}

// FuelCost returns the accumulated fuel cost.
func (t *Trip) FuelCost() float64 {
	return t.fuelCost
}

// Revenue returns the trip revenue.
func (t *Trip) Revenue() float64 {
	return t.revenue
}

// CancelReason returns the reason supplied at cancellation, if any.
func (t *Trip) CancelReason() string {
	return t.cancelReason
}

// Version returns the optimistic concurrency token loaded from storage.
func (t *Trip) Version() int {
	return t.version
}

// Dispatch moves the trip in flight and stamps the actual start time.
func (t *Trip) Dispatch(now time.Time) error {
	newStatus, err := t.status.Dispatch()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.actualStartTime = &now
	return nil
}

// Complete finishes the trip, stamps the actual end time and applies the
// optional final readings. Completing an already terminal trip fails.
func (t *Trip) Complete(now time.Time, payload CompletionPayload) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.actualEndTime = &now
	if payload.FuelConsumedLiters != nil {
		t.fuelConsumedLiters = *payload.FuelConsumedLiters
	}
	if payload.FuelCost != nil {
		t.fuelCost = *payload.FuelCost
	}
	if payload.Revenue != nil {
		t.revenue = *payload.Revenue
	}
	return nil
}

// Cancel aborts the trip from any non-terminal status.
// Callers that need to release the vehicle and driver must inspect Status()
// before calling Cancel: the release applies exactly when the pre-transition
// status was Dispatched.
func (t *Trip) Cancel(now time.Time, reason string) error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.actualEndTime = &now
	t.cancelReason = reason
	return nil
}

// UpdateDetails replaces the editable fields of a Draft trip.
func (t *Trip) UpdateDetails(origin, destination string, cargoWeightKg int, scheduledStartTime time.Time) error {
	if err := t.status.ValidateCanUpdate(); err != nil {
		return err
	}

	if err := errors.Join(
		t.setRoute(origin, destination),
		t.setCargoWeight(cargoWeightKg),
	); err != nil {
		return err
	}

	t.scheduledStartTime = scheduledStartTime
	return nil
}

// AddFuel accumulates fuel usage from a linked fuel expense.
func (t *Trip) AddFuel(liters, cost float64) {
	t.fuelConsumedLiters += liters
	t.fuelCost += cost
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	t.number = number
	return nil
}

func (t *Trip) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	t.vehicleID = vehicleID
	return nil
}

func (t *Trip) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	t.driverID = driverID
	return nil
}

func (t *Trip) setRoute(origin, destination string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	if destination == "" {
		return ErrDestinationIsRequired
	}
	t.origin = origin
	t.destination = destination
	return nil
}

func (t *Trip) setCargoWeight(cargoWeightKg int) error {
	if cargoWeightKg <= 0 {
		return ErrCargoWeightIsInvalid
	}
	t.cargoWeightKg = cargoWeightKg
	return nil
}
