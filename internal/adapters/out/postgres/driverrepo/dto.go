// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The version column carries the optimistic concurrency token.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	LicenceNumber  string
	LicenceExpiry  *time.Time `gorm:"index"`
	DutyStatus     int        `gorm:"index"`
	TotalTrips     int
	CompletedTrips int
	CancelledTrips int
	IsActive       bool
	Version        int
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database
// representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		LicenceNumber:  aggregate.LicenceNumber(),
		LicenceExpiry:  aggregate.LicenceExpiry(),
		DutyStatus:     int(aggregate.DutyStatus()),
		TotalTrips:     aggregate.TotalTrips(),
		CompletedTrips: aggregate.CompletedTrips(),
		CancelledTrips: aggregate.CancelledTrips(),
		IsActive:       aggregate.IsActive(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using
// RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.LicenceNumber,
		dto.LicenceExpiry,
		driver.DutyStatus(dto.DutyStatus),
		dto.TotalTrips,
		dto.CompletedTrips,
		dto.CancelledTrips,
		dto.IsActive,
		dto.Version,
	)
}
