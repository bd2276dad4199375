package driver

import (
	"errors"
	"fmt"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when registering a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenceNumberIsRequired is returned when registering a driver without a licence number.
	ErrLicenceNumberIsRequired = errs.NewValueIsRequiredError("licenceNumber")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver is the aggregate root for a fleet driver.
// It owns the driver's duty status and lifetime trip counters.
//
// Invariants:
//   - dutyStatus == OnTrip implies the driver is referenced by exactly one
//     in-flight trip
//   - trip counters only grow, and only through CompleteTrip/CancelTrip
//   - a deactivated driver can never be claimed by a new trip
type Driver struct {
	id            kernel.UUID
	name          string
	licenceNumber string
	licenceExpiry *time.Time

	dutyStatus     DutyStatus
	totalTrips     int
	completedTrips int
	cancelledTrips int
	isActive       bool

	// version is the optimistic concurrency token maintained by storage.
	version int

	guard guard.ConstructorGuard
}

// NewDriver registers a new driver. The driver starts OffDuty and active.
// licenceExpiry may be nil when the expiry date is not tracked.
func NewDriver(id kernel.UUID, name, licenceNumber string, licenceExpiry *time.Time) (*Driver, error) {
	d := &Driver{
		dutyStatus:    OffDuty,
		licenceExpiry: licenceExpiry,
		isActive:      true,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenceNumber(licenceNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name string,
	licenceNumber string,
	licenceExpiry *time.Time,
	dutyStatus DutyStatus,
	totalTrips int,
	completedTrips int,
	cancelledTrips int,
	isActive bool,
	version int,
) (*Driver, error) {
	if err := dutyStatus.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		dutyStatus:     dutyStatus,
		licenceExpiry:  licenceExpiry,
		totalTrips:     totalTrips,
		completedTrips: completedTrips,
		cancelledTrips: cancelledTrips,
		isActive:       isActive,
		version:        version,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenceNumber(licenceNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenceNumber returns the driving licence number.
func (d *Driver) LicenceNumber() string {
	return d.licenceNumber
}

// LicenceExpiry returns the licence expiry date, or nil when not tracked.
func (d *Driver) LicenceExpiry() *time.Time {
	return d.licenceExpiry
}

// DutyStatus returns the current duty status.
func (d *Driver) DutyStatus() DutyStatus {
	return d.dutyStatus
}

// TotalTrips returns how many trips the driver has finished, completed or
// cancelled after dispatch.
func (d *Driver) TotalTrips() int {
	return d.totalTrips
}

// CompletedTrips returns how many trips the driver completed.
func (d *Driver) CompletedTrips() int {
	return d.completedTrips
}

// CancelledTrips returns how many dispatched trips were cancelled under the
// driver.
func (d *Driver) CancelledTrips() int {
	return d.cancelledTrips
}

// IsActive reports whether the driver is still part of the fleet.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// Version returns the optimistic concurrency token loaded from storage.
func (d *Driver) Version() int {
	return d.version
}

// HasValidLicence reports whether the licence is usable at the given instant.
// An untracked expiry date counts as valid.
func (d *Driver) HasValidLicence(at time.Time) bool {
	return d.licenceExpiry == nil || d.licenceExpiry.After(at)
}

// GoOnDuty puts the driver on duty so trips can claim them.
func (d *Driver) GoOnDuty() error {
	if !d.isActive {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("driver %s is deactivated and cannot go on duty", d.name),
		)
	}

	newStatus, err := d.dutyStatus.GoOnDuty()
	if err != nil {
		return err
	}

	d.dutyStatus = newStatus
	return nil
}

// GoOffDuty takes the driver off duty. Rejected while OnTrip.
func (d *Driver) GoOffDuty() error {
	newStatus, err := d.dutyStatus.GoOffDuty()
	if err != nil {
		return err
	}

	d.dutyStatus = newStatus
	return nil
}

// BeginTrip claims the driver for a dispatched trip.
func (d *Driver) BeginTrip() error {
	if !d.isActive {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("driver %s is deactivated and cannot be dispatched", d.name),
		)
	}

	newStatus, err := d.dutyStatus.BeginTrip()
	if err != nil {
		return err
	}

	d.dutyStatus = newStatus
	return nil
}

// CompleteTrip releases the driver after a completed trip and updates the
// lifetime counters exactly once.
func (d *Driver) CompleteTrip() error {
	newStatus, err := d.dutyStatus.EndTrip()
	if err != nil {
		return err
	}

	d.dutyStatus = newStatus
	d.totalTrips++
	d.completedTrips++
	return nil
}

// CancelTrip releases the driver after a dispatched trip was cancelled and
// updates the lifetime counters exactly once.
func (d *Driver) CancelTrip() error {
	newStatus, err := d.dutyStatus.EndTrip()
	if err != nil {
		return err
	}

	d.dutyStatus = newStatus
	d.totalTrips++
	d.cancelledTrips++
	return nil
}

// Deactivate removes the driver from active service.
// Rejected while the driver is claimed by a trip.
func (d *Driver) Deactivate() error {
	if d.dutyStatus == OnTrip {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("driver %s is on a trip and cannot be deactivated", d.name),
		)
	}

	d.dutyStatus = OffDuty
	d.isActive = false
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenceNumber(licenceNumber string) error {
	if licenceNumber == "" {
		return ErrLicenceNumberIsRequired
	}
	d.licenceNumber = licenceNumber
	return nil
}
