// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. It implements the repository pattern for the
// vehicle aggregate, handling the conversion between domain entities and
// database representations.
package vehiclerepo

import (
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The version column carries the optimistic concurrency token.
type VehicleDTO struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate                    string    `gorm:"uniqueIndex"`
	Model                    string
	MaxLoadCapacityKg        int
	OdometerKm               float64
	FuelEfficiencyKmPerLiter float64
	Region                   string     `gorm:"index"`
	Status                   int        `gorm:"index"`
	AssignedDriverID         *uuid.UUID `gorm:"type:uuid"`
	CurrentTripID            *uuid.UUID `gorm:"type:uuid"`
	IsActive                 bool
	LastMaintenanceDate      *time.Time
	NextMaintenanceDue       *time.Time `gorm:"index"`
	Version                  int
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                       aggregate.ID().Bytes(),
		Plate:                    aggregate.Plate(),
		Model:                    aggregate.Model(),
		MaxLoadCapacityKg:        aggregate.MaxLoadCapacityKg(),
		OdometerKm:               aggregate.OdometerKm(),
		FuelEfficiencyKmPerLiter: aggregate.FuelEfficiencyKmPerLiter(),
		Region:                   aggregate.Region(),
		Status:                   int(aggregate.Status()),
		AssignedDriverID:         uuidPtr(aggregate.AssignedDriver()),
		CurrentTripID:            uuidPtr(aggregate.CurrentTrip()),
		IsActive:                 aggregate.IsActive(),
		LastMaintenanceDate:      aggregate.LastMaintenanceDate(),
		NextMaintenanceDue:       aggregate.NextMaintenanceDue(),
		Version:                  aggregate.Version(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using
// RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedDriverID, err := kernelUUIDPtr(dto.AssignedDriverID)
	if err != nil {
		return nil, err
	}

	currentTripID, err := kernelUUIDPtr(dto.CurrentTripID)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Plate,
		dto.Model,
		dto.MaxLoadCapacityKg,
		dto.Region,
		dto.OdometerKm,
		dto.FuelEfficiencyKmPerLiter,
		vehicle.Status(dto.Status),
		assignedDriverID,
		currentTripID,
		dto.IsActive,
		dto.LastMaintenanceDate,
		dto.NextMaintenanceDue,
		dto.Version,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
