// Package servicelog provides the ServiceLog aggregate root for vehicle
// maintenance and its lifecycle state machine.
//
// A vehicle has at most one service log in {New, InProgress} at a time; the
// vehicle's own InShop status acts as the mutual-exclusion flag, so opening a
// service log and flipping the vehicle to InShop always happens in the same
// atomic unit.
package servicelog

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

// Domain errors for service log operations.
var (
	// ErrNumberIsRequired is returned when creating a service log without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrIssueIsRequired is returned when creating a service log without an issue description.
	ErrIssueIsRequired = errs.NewValueIsRequiredError("issue")
	// ErrCostIsInvalid is returned when a negative cost is supplied.
	ErrCostIsInvalid = errs.NewValueIsInvalidError("cost must not be negative")
	// ErrServiceLogIsNotConstructed is returned when using an improperly initialized ServiceLog.
	ErrServiceLogIsNotConstructed = errors.New("ServiceLog must be created via NewServiceLog or RestoreServiceLog")
)

// ServiceLog is the aggregate root for one maintenance service on a vehicle.
// While non-terminal it is the maintenance claim on its vehicle.
type ServiceLog struct {
	id     kernel.UUID
	number string

	vehicleID kernel.UUID

	issue         string
	scheduledDate time.Time
	startedAt     *time.Time
	completedAt   *time.Time

	estimatedCost float64
	cost          float64
	notes         string
	cancelReason  string

	status Status

	// version is the optimistic concurrency token maintained by storage.
	version int

	guard guard.ConstructorGuard
}

// NewServiceLog opens a service log in New status.
// The log number comes from the sequence service and is assigned exactly
// once, in the same atomic unit as the insert.
func NewServiceLog(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	issue string,
	scheduledDate time.Time,
	estimatedCost float64,
) (*ServiceLog, error) {
	s := &ServiceLog{
		status:        New,
		scheduledDate: scheduledDate,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setVehicleID(vehicleID),
		s.setIssue(issue),
		s.setEstimatedCost(estimatedCost),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreServiceLog reconstructs a ServiceLog from persistent storage.
func RestoreServiceLog(
	id kernel.UUID,
	number string,
	vehicleID kernel.UUID,
	issue string,
	scheduledDate time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	estimatedCost float64,
	cost float64,
	notes string,
	cancelReason string,
	status Status,
	version int,
) (*ServiceLog, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s := &ServiceLog{
		status:        status,
		scheduledDate: scheduledDate,
		startedAt:     startedAt,
		completedAt:   completedAt,
		cost:          cost,
		notes:         notes,
		cancelReason:  cancelReason,
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setVehicleID(vehicleID),
		s.setIssue(issue),
		s.setEstimatedCost(estimatedCost),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the ServiceLog was created through a constructor.
func (s *ServiceLog) Validate() error {
	if s == nil {
		return ErrServiceLogIsNotConstructed
	}
	return s.guard.Validate(ErrServiceLogIsNotConstructed)
}

// ID returns the service log's unique identifier.
func (s *ServiceLog) ID() kernel.UUID {
	return s.id
}

// Number returns the human-readable log number, e.g. "SRV-000007".
func (s *ServiceLog) Number() string {
	return s.number
}

// VehicleID returns the serviced vehicle's identifier.
func (s *ServiceLog) VehicleID() kernel.UUID {
	return s.vehicleID
}

// Issue returns the reported issue description.
func (s *ServiceLog) Issue() string {
	return s.issue
}

// ScheduledDate returns when the service is planned.
func (s *ServiceLog) ScheduledDate() time.Time {
	return s.scheduledDate
}

// StartedAt returns when work started, or nil while New.
func (s *ServiceLog) StartedAt() *time.Time {
	return s.startedAt
}

// CompletedAt returns when the service completed, or nil.
func (s *ServiceLog) CompletedAt() *time.Time {
	return s.completedAt
}

// EstimatedCost returns the cost estimate captured at creation.
func (s *ServiceLog) EstimatedCost() float64 {
	return s.estimatedCost
}

// Cost returns the final cost recorded at completion.
func (s *ServiceLog) Cost() float64 {
	return s.cost
}

// Notes returns the mechanic's notes recorded at completion.
func (s *ServiceLog) Notes() string {
	return s.notes
}

// CancelReason returns the reason supplied at cancellation, if any.
func (s *ServiceLog) CancelReason() string {
	return s.cancelReason
}

// Status returns the current lifecycle status.
func (s *ServiceLog) Status() Status {
	return s.status
}

// Version returns the optimistic concurrency token loaded from storage.
func (s *ServiceLog) Version() int {
	return s.version
}

// Start begins work on the vehicle and stamps the start time.
// The vehicle is already InShop, so no vehicle change accompanies this.
func (s *ServiceLog) Start(now time.Time) error {
	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.startedAt = &now
	return nil
}

// Complete finishes the service, recording the final cost and notes.
func (s *ServiceLog) Complete(now time.Time, cost float64, notes string) error {
	if cost < 0 {
		return ErrCostIsInvalid
	}

	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.completedAt = &now
	s.cost = cost
	s.notes = notes
	return nil
}

// Cancel aborts the service from any non-terminal status.
func (s *ServiceLog) Cancel(reason string) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.cancelReason = reason
	return nil
}

// UpdateDetails replaces the editable fields of a non-terminal service log.
func (s *ServiceLog) UpdateDetails(issue string, scheduledDate time.Time, estimatedCost float64) error {
	if err := s.status.ValidateCanUpdate(); err != nil {
		return err
	}

	if err := errors.Join(
		s.setIssue(issue),
		s.setEstimatedCost(estimatedCost),
	); err != nil {
		return err
	}

	s.scheduledDate = scheduledDate
	return nil
}

func (s *ServiceLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ServiceLog) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	s.number = number
	return nil
}

func (s *ServiceLog) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	s.vehicleID = vehicleID
	return nil
}

func (s *ServiceLog) setIssue(issue string) error {
	if issue == "" {
		return ErrIssueIsRequired
	}
	s.issue = issue
	return nil
}

func (s *ServiceLog) setEstimatedCost(estimatedCost float64) error {
	if estimatedCost < 0 {
		return ErrCostIsInvalid
	}
	s.estimatedCost = estimatedCost
	return nil
}
