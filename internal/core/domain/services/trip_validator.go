package services

import (
	"fmt"
	"time"

	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"
)

// TripValidator is a domain service holding the cross-entity admissibility
// checks for trip transitions. Single-entity rules live on the aggregates
// themselves; this service validates the conditions that span a vehicle and
// a driver at once.
//
// The checks are pure: they read the supplied snapshots and either accept or
// return a PreconditionFailed error with a reason specific enough to render
// to a user. Callers must pass snapshots loaded inside the transaction that
// will apply the transition, never request-time copies.
type TripValidator struct{}

// NewTripValidator creates a new TripValidator instance.
func NewTripValidator() TripValidator {
	return TripValidator{}
}

// ValidateCreation decides whether a trip may be created against the given
// vehicle and driver.
//
// Rules:
//   - the vehicle must be active and Available
//   - the driver must be active and OnDuty
//   - the driver's licence must be unexpired (an untracked expiry passes)
//   - the cargo weight must not exceed the vehicle's load capacity
func (v TripValidator) ValidateCreation(
	veh *vehicle.Vehicle,
	drv *driver.Driver,
	cargoWeightKg int,
	at time.Time,
) error {
	if err := v.validateVehicleClaimable(veh); err != nil {
		return err
	}
	if err := v.validateDriverClaimable(drv); err != nil {
		return err
	}

	if !drv.HasValidLicence(at) {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"driver %s licence expired on %s",
			drv.Name(), drv.LicenceExpiry().Format("2006-01-02"),
		))
	}

	if cargoWeightKg > veh.MaxLoadCapacityKg() {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"cargo weight %dkg exceeds vehicle capacity %dkg",
			cargoWeightKg, veh.MaxLoadCapacityKg(),
		))
	}

	return nil
}

// ValidateDispatch decides whether a draft trip may go in flight against the
// given vehicle and driver. The vehicle and driver state is re-checked at
// dispatch time from freshly loaded snapshots, not from their state at trip
// creation.
func (v TripValidator) ValidateDispatch(veh *vehicle.Vehicle, drv *driver.Driver) error {
	if err := v.validateVehicleClaimable(veh); err != nil {
		return err
	}
	return v.validateDriverClaimable(drv)
}

func (v TripValidator) validateVehicleClaimable(veh *vehicle.Vehicle) error {
	if !veh.IsActive() {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle %s is retired", veh.Plate()),
		)
	}
	if veh.Status() != vehicle.Available {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"vehicle %s is %s, must be Available", veh.Plate(), veh.Status(),
		))
	}
	return nil
}

func (v TripValidator) validateDriverClaimable(drv *driver.Driver) error {
	if !drv.IsActive() {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("driver %s is deactivated", drv.Name()),
		)
	}
	if drv.DutyStatus() != driver.OnDuty {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"driver %s is %s, must be OnDuty", drv.Name(), drv.DutyStatus(),
		))
	}
	return nil
}
