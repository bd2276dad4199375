package vehicle

import (
	"errors"
	"fmt"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when registering a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrModelIsRequired is returned when registering a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrCapacityIsInvalid is returned when the load capacity is not positive.
	ErrCapacityIsInvalid = errs.NewValueIsInvalidError("maxLoadCapacityKg must be greater than 0")
	// ErrOdometerIsInvalid is returned when the odometer value is negative.
	ErrOdometerIsInvalid = errs.NewValueIsInvalidError("odometerKm must not be negative")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")
)

// Vehicle is the aggregate root for a physical fleet vehicle.
// It owns the vehicle's lifecycle status and the weak back-references to the
// trip and driver currently claiming it.
//
// Invariants:
//   - status == OnTrip if and only if currentTripID is set
//   - status == InShop implies currentTripID is unset
//   - the odometer is monotonically non-decreasing
//   - a retired vehicle (isActive == false) can never be claimed again
//
// All lifecycle mutations happen through the transition methods below;
// administrative edits never touch the lifecycle fields.
type Vehicle struct {
	id    kernel.UUID
	plate string
	model string

	maxLoadCapacityKg        int
	odometerKm               float64
	fuelEfficiencyKmPerLiter float64
	region                   string

	status           Status
	assignedDriverID *kernel.UUID
	currentTripID    *kernel.UUID
	isActive         bool

	lastMaintenanceDate *time.Time
	nextMaintenanceDue  *time.Time

	// version is the optimistic concurrency token maintained by storage.
	version int

	guard guard.ConstructorGuard
}

// NewVehicle registers a new vehicle in the fleet.
// The vehicle starts Available, active, with no trip or driver attached.
func NewVehicle(
	id kernel.UUID,
	plate string,
	model string,
	maxLoadCapacityKg int,
	region string,
	odometerKm float64,
	fuelEfficiencyKmPerLiter float64,
) (*Vehicle, error) {
	v := &Vehicle{
		status:   Available,
		isActive: true,
		version:  1,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setModel(model),
		v.setCapacity(maxLoadCapacityKg),
		v.setOdometer(odometerKm),
	); err != nil {
		return nil, err
	}

	v.region = region
	v.fuelEfficiencyKmPerLiter = fuelEfficiencyKmPerLiter
	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
// Unlike NewVehicle it accepts the full persisted state, including lifecycle
// fields and the storage version, and re-checks the status/trip consistency
// invariant so corrupt rows never become live aggregates.
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	model string,
	maxLoadCapacityKg int,
	region string,
	odometerKm float64,
	fuelEfficiencyKmPerLiter float64,
	status Status,
	assignedDriverID *kernel.UUID,
	currentTripID *kernel.UUID,
	isActive bool,
	lastMaintenanceDate *time.Time,
	nextMaintenanceDue *time.Time,
	version int,
) (*Vehicle, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveTrip(currentTripID != nil); err != nil {
		return nil, err
	}

	v := &Vehicle{
		status:                   status,
		assignedDriverID:         assignedDriverID,
		currentTripID:            currentTripID,
		isActive:                 isActive,
		lastMaintenanceDate:      lastMaintenanceDate,
		nextMaintenanceDue:       nextMaintenanceDue,
		region:                   region,
		fuelEfficiencyKmPerLiter: fuelEfficiencyKmPerLiter,
		version:                  version,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setModel(model),
		v.setCapacity(maxLoadCapacityKg),
		v.setOdometer(odometerKm),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the unique registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Model returns the vehicle model.
func (v *Vehicle) Model() string {
	return v.model
}

// MaxLoadCapacityKg returns the maximum cargo weight the vehicle may carry.
func (v *Vehicle) MaxLoadCapacityKg() int {
	return v.maxLoadCapacityKg
}

// OdometerKm returns the current odometer reading.
func (v *Vehicle) OdometerKm() float64 {
	return v.odometerKm
}

// FuelEfficiencyKmPerLiter returns the recorded fuel efficiency.
func (v *Vehicle) FuelEfficiencyKmPerLiter() float64 {
	return v.fuelEfficiencyKmPerLiter
}

// Region returns the operating region.
func (v *Vehicle) Region() string {
	return v.region
}

// Status returns the current lifecycle status.
func (v *Vehicle) Status() Status {
	return v.status
}

// AssignedDriver returns the ID of the driver currently attached to the
// vehicle, or nil when idle.
func (v *Vehicle) AssignedDriver() *kernel.UUID {
	return v.assignedDriverID
}

// CurrentTrip returns the ID of the trip currently claiming the vehicle,
// or nil when no trip is in flight.
func (v *Vehicle) CurrentTrip() *kernel.UUID {
	return v.currentTripID
}

// IsActive reports whether the vehicle is still part of the fleet.
func (v *Vehicle) IsActive() bool {
	return v.isActive
}

// LastMaintenanceDate returns when the vehicle last entered or left the shop.
func (v *Vehicle) LastMaintenanceDate() *time.Time {
	return v.lastMaintenanceDate
}

// NextMaintenanceDue returns the scheduled date of the next maintenance.
func (v *Vehicle) NextMaintenanceDue() *time.Time {
	return v.nextMaintenanceDue
}

// Version returns the optimistic concurrency token loaded from storage.
func (v *Vehicle) Version() int {
	return v.version
}

// BeginTrip claims the vehicle for a dispatched trip.
// The vehicle must be active and Available; on success the status becomes
// OnTrip and the trip/driver back-references are set.
func (v *Vehicle) BeginTrip(tripID, driverID kernel.UUID) error {
	if err := errors.Join(tripID.Validate(), driverID.Validate()); err != nil {
		return err
	}
	if !v.isActive {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("vehicle %s is retired and cannot be dispatched", v.plate),
		)
	}

	newStatus, err := v.status.BeginTrip()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.currentTripID = &tripID
	v.assignedDriverID = &driverID
	return nil
}

// ReleaseFromTrip returns the vehicle to Available after its trip completed
// or was cancelled. When a final odometer reading is supplied it is applied
// under the monotonic odometer rule.
func (v *Vehicle) ReleaseFromTrip(finalOdometerKm *float64) error {
	newStatus, err := v.status.ReleaseFromTrip()
	if err != nil {
		return err
	}

	if finalOdometerKm != nil {
		if err := v.RecordOdometer(*finalOdometerKm); err != nil {
			return err
		}
	}

	v.status = newStatus
	v.currentTripID = nil
	v.assignedDriverID = nil
	return nil
}

// EnterShop moves the vehicle into maintenance.
// Any trip/driver back-references are cleared and the last maintenance date
// is stamped. Fails when the vehicle is OnTrip or already InShop.
func (v *Vehicle) EnterShop(now time.Time) error {
	newStatus, err := v.status.EnterShop()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.currentTripID = nil
	v.assignedDriverID = nil
	v.lastMaintenanceDate = &now
	return nil
}

// CompleteMaintenance returns the vehicle to Available after a completed
// service, stamping the maintenance dates. A retired vehicle goes back to
// OutOfService instead.
func (v *Vehicle) CompleteMaintenance(now time.Time, nextDue time.Time) error {
	if err := v.leaveShop(); err != nil {
		return err
	}

	v.lastMaintenanceDate = &now
	v.nextMaintenanceDue = &nextDue
	return nil
}

// ExitShop returns the vehicle to Available when its service log was
// cancelled or deleted. Maintenance dates are left untouched; a retired
// vehicle goes back to OutOfService instead.
func (v *Vehicle) ExitShop() error {
	return v.leaveShop()
}

func (v *Vehicle) leaveShop() error {
	newStatus, err := v.status.LeaveShop()
	if err != nil {
		return err
	}

	// Retirement outlives a shop visit.
	if !v.isActive {
		newStatus = OutOfService
	}
	v.status = newStatus
	return nil
}

// RecordOdometer applies a new odometer reading.
// Readings may never decrease.
func (v *Vehicle) RecordOdometer(readingKm float64) error {
	if readingKm < v.odometerKm {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"odometer reading %.1fkm is below the current odometer %.1fkm",
			readingKm, v.odometerKm,
		))
	}

	v.odometerKm = readingKm
	return nil
}

// RecordFuelEfficiency recomputes the fuel efficiency from a fuel fill-up.
// Both distance and liters must be positive; otherwise the reading is ignored.
func (v *Vehicle) RecordFuelEfficiency(distanceKm, liters float64) {
	if distanceKm > 0 && liters > 0 {
		v.fuelEfficiencyKmPerLiter = distanceKm / liters
	}
}

// Retire removes the vehicle from active service.
// Retirement is logical: the record stays, isActive flips to false and the
// status becomes OutOfService. Only an Available vehicle can be retired.
func (v *Vehicle) Retire() error {
	newStatus, err := v.status.Retire()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.isActive = false
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	v.model = model
	return nil
}

func (v *Vehicle) setCapacity(capacityKg int) error {
	if capacityKg <= 0 {
		return ErrCapacityIsInvalid
	}
	v.maxLoadCapacityKg = capacityKg
	return nil
}

func (v *Vehicle) setOdometer(odometerKm float64) error {
	if odometerKm < 0 {
		return ErrOdometerIsInvalid
	}
	v.odometerKm = odometerKm
	return nil
}
