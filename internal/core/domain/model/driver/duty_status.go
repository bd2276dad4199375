package driver

import (
	"fmt"

	"fleetcore/internal/pkg/errs"
)

// DutyStatus represents the duty state of a driver.
//
// State transitions:
//
//	OffDuty <──> OnDuty ──> OnTrip ──> OnDuty
//
// A driver who is OnTrip is referenced by exactly one in-flight trip and
// cannot change duty state or be claimed by another trip until released.
type DutyStatus int

const (
	// UnknownDuty represents an invalid or undefined duty status.
	UnknownDuty DutyStatus = iota

	// OffDuty means the driver is not working and cannot be dispatched.
	OffDuty

	// OnDuty means the driver is working and available for a trip.
	OnDuty

	// OnTrip means the driver is claimed by exactly one dispatched trip.
	OnTrip
)

func getDutyStatusStrings() map[DutyStatus]string {
	return map[DutyStatus]string{
		UnknownDuty: "Unknown",
		OffDuty:     "OffDuty",
		OnDuty:      "OnDuty",
		OnTrip:      "OnTrip",
	}
}

// Validate checks if the DutyStatus value is one of the defined statuses.
func (s DutyStatus) Validate() error {
	if s != OffDuty && s != OnDuty && s != OnTrip {
		return errs.NewValueIsInvalidErrorWithCause("dutyStatus is invalid",
			fmt.Errorf("%d is not a valid duty status", s))
	}
	return nil
}

// String returns the human-readable name of the duty status.
func (s DutyStatus) String() string {
	if str, ok := getDutyStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// GoOnDuty transitions the driver to OnDuty. Only valid from OffDuty.
func (s DutyStatus) GoOnDuty() (DutyStatus, error) {
	if s != OffDuty {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("driver is %s, must be OffDuty to go on duty", s),
		)
	}
	return OnDuty, nil
}

// GoOffDuty transitions the driver to OffDuty. A driver in the middle of a
// trip must be released by that trip first.
func (s DutyStatus) GoOffDuty() (DutyStatus, error) {
	if s != OnDuty {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("driver is %s, must be OnDuty to go off duty", s),
		)
	}
	return OffDuty, nil
}

// BeginTrip transitions the driver to OnTrip. Only an OnDuty driver can be
// claimed; the claim is re-checked at dispatch time.
func (s DutyStatus) BeginTrip() (DutyStatus, error) {
	if s != OnDuty {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("driver is %s, must be OnDuty to start a trip", s),
		)
	}
	return OnTrip, nil
}

// EndTrip transitions the driver back to OnDuty when the claiming trip
// completes or is cancelled.
func (s DutyStatus) EndTrip() (DutyStatus, error) {
	if s != OnTrip {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("driver is %s, must be OnTrip to be released from a trip", s),
		)
	}
	return OnDuty, nil
}
