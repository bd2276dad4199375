package servicelog

import (
	"fmt"

	"fleetcore/internal/pkg/errs"
)

// Status represents the lifecycle state of a maintenance service log.
//
// State transitions:
//
//	New ──> InProgress ──> Completed
//	 │          │
//	 └──────────┴──> Cancelled
//
// Completed and Cancelled are terminal. A service log may be completed or
// cancelled straight from New; deletion is only permitted while New.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New is the initial status: the service is scheduled but work has not
	// started. New is the only status permitting deletion.
	New

	// InProgress means work on the vehicle has started.
	InProgress

	// Completed is the terminal success status.
	Completed

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		InProgress: "InProgress",
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

// Start transitions the status to InProgress. Only valid from New.
func (s Status) Start() (Status, error) {
	if s != New {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("service log is %s, only a New service can be started", s),
		)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed from any non-terminal status.
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("service log is already %s and cannot be completed", s),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("service log is already %s and cannot be cancelled", s),
		)
	}
	return Cancelled, nil
}

// ValidateCanUpdate rejects edits to a terminal service log.
func (s Status) ValidateCanUpdate() error {
	if s.IsTerminal() {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("service log is %s and cannot be updated", s),
		)
	}
	return nil
}

// ValidateCanDelete rejects deletion unless the service log is still New.
func (s Status) ValidateCanDelete() error {
	if s != New {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("service log is %s, only a New service log can be deleted", s),
		)
	}
	return nil
}
