// Package triprepo provides data transfer objects and mapping functions for
// trip persistence.
package triprepo

import (
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// The number column is uniquely indexed so a sequence collision surfaces at
// commit instead of producing two trips with the same number.
type TripDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number             string    `gorm:"uniqueIndex"`
	VehicleID          uuid.UUID `gorm:"type:uuid;index"`
	DriverID           uuid.UUID `gorm:"type:uuid;index"`
	Origin             string
	Destination        string
	CargoWeightKg      int
	ScheduledStartTime time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	Status             int `gorm:"index"`
	FuelConsumedLiters float64
	FuelCost           float64
	Revenue            float64
	CancelReason       string
	Version            int
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database
// representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	return TripDTO{
		ID:                 aggregate.ID().Bytes(),
		Number:             aggregate.Number(),
		VehicleID:          aggregate.VehicleID().Bytes(),
		DriverID:           aggregate.DriverID().Bytes(),
		Origin:             aggregate.Origin(),
		Destination:        aggregate.Destination(),
		CargoWeightKg:      aggregate.CargoWeightKg(),
		ScheduledStartTime: aggregate.ScheduledStartTime(),
		ActualStartTime:    aggregate.ActualStartTime(),
		ActualEndTime:      aggregate.ActualEndTime(),
		Status:             int(aggregate.Status()),
		FuelConsumedLiters: aggregate.FuelConsumedLiters(),
		FuelCost:           aggregate.FuelCost(),
		Revenue:            aggregate.Revenue(),
		CancelReason:       aggregate.CancelReason(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to a trip domain aggregate using
// RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(
		id,
		dto.Number,
		vehicleID,
		driverID,
		dto.Origin,
		dto.Destination,
		dto.CargoWeightKg,
		dto.ScheduledStartTime,
		dto.ActualStartTime,
		dto.ActualEndTime,
		trip.Status(dto.Status),
		dto.FuelConsumedLiters,
		dto.FuelCost,
		dto.Revenue,
		dto.CancelReason,
		dto.Version,
	)
}
