package trip

import (
	"fmt"

	"fleetcore/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	Draft ──> Dispatched ──> Completed
//	  │           │
//	  └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no further transition is permitted,
// and repeating a terminal transition fails rather than silently succeeding,
// so driver counters can never be double-applied.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status. A draft trip holds no claim on its
	// vehicle or driver and is the only status allowing update or delete.
	Draft

	// Dispatched means the trip is in flight and holds the exclusive claim
	// on its vehicle and driver.
	Dispatched

	// Completed is the terminal success status.
	Completed

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		Dispatched: "Dispatched",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Dispatched: "Dispatched",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Dispatch transitions the status to Dispatched. Only valid from Draft.
func (s Status) Dispatch() (Status, error) {
	if s != Draft {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("trip is %s, only a Draft trip can be dispatched", s),
		)
	}
	return Dispatched, nil
}

// Complete transitions the status to Completed. Only valid from Dispatched.
func (s Status) Complete() (Status, error) {
	if s != Dispatched {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("trip is %s, only a Dispatched trip can be completed", s),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("trip is already %s and cannot be cancelled", s),
		)
	}
	return Cancelled, nil
}

// ValidateCanUpdate rejects updates to any trip that has left Draft.
func (s Status) ValidateCanUpdate() error {
	if s != Draft {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("trip is %s, only a Draft trip can be updated", s),
		)
	}
	return nil
}

// ValidateCanDelete rejects deletion of any trip that has left Draft.
func (s Status) ValidateCanDelete() error {
	if s != Draft {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("trip is %s, only a Draft trip can be deleted", s),
		)
	}
	return nil
}
