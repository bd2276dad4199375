package vehicle

import (
	"fmt"

	"fleetcore/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
// It implements a state machine with defined transitions so a vehicle can
// never be claimed by two operations at once.
//
// State transitions:
//
//	Available ──> OnTrip ──> Available
//	Available ──> InShop ──> Available
//	Available ──> OutOfService (terminal, via retirement)
//
// The vehicle's status acts as the mutual-exclusion flag between trips and
// maintenance: a trip can only claim an Available vehicle, and a service log
// can only open against a vehicle that is neither OnTrip nor InShop.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the vehicle is idle and may be claimed by a trip
	// or taken into the shop for maintenance.
	Available

	// OnTrip means the vehicle is claimed by exactly one dispatched trip.
	OnTrip

	// InShop means the vehicle is undergoing maintenance and cannot be
	// dispatched.
	InShop

	// OutOfService means the vehicle was retired from the fleet.
	// Retired vehicles are never hard-deleted.
	OutOfService
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Available:    "Available",
		OnTrip:       "OnTrip",
		InShop:       "InShop",
		OutOfService: "OutOfService",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:    "Available",
		OnTrip:       "OnTrip",
		InShop:       "InShop",
		OutOfService: "OutOfService",
	}
}

// Validate checks if the Status value is one of the defined statuses.
// Used when rehydrating vehicles from storage or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// BeginTrip transitions the status to OnTrip.
// Only an Available vehicle can be claimed by a trip; the claim is re-checked
// at dispatch time, not just at trip creation time.
func (s Status) BeginTrip() (Status, error) {
	if s != Available {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle is %s, must be Available to start a trip", s),
		)
	}
	return OnTrip, nil
}

// ReleaseFromTrip transitions the status back to Available after the claiming
// trip completed or was cancelled.
func (s Status) ReleaseFromTrip() (Status, error) {
	if s != OnTrip {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle is %s, must be OnTrip to be released from a trip", s),
		)
	}
	return Available, nil
}

// EnterShop transitions the status to InShop.
// A vehicle that is already in the shop or out on a trip cannot open another
// service log; its own status is the mutual-exclusion flag.
func (s Status) EnterShop() (Status, error) {
	if s == InShop || s == OnTrip {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle is %s and cannot enter the shop", s),
		)
	}
	return InShop, nil
}

// LeaveShop transitions the status back to Available when the service log
// completes, is cancelled, or is deleted.
func (s Status) LeaveShop() (Status, error) {
	if s != InShop {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle is %s, must be InShop to leave the shop", s),
		)
	}
	return Available, nil
}

// Retire transitions the status to OutOfService.
// Only an idle vehicle can be retired; a vehicle on a trip or in the shop
// must finish that operation first.
func (s Status) Retire() (Status, error) {
	if s != Available {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle is %s, must be Available to be retired", s),
		)
	}
	return OutOfService, nil
}

// ValidateCanHaveTrip validates the consistency between the vehicle status and
// its current-trip reference: OnTrip requires a trip reference, every other
// status forbids one.
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && s != OnTrip {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a current trip", s),
		)
	}

	if !hasTrip && s == OnTrip {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires a current trip", s),
		)
	}

	return nil
}
