// Package servicerepo provides data transfer objects and mapping functions
// for service log persistence.
package servicerepo

import (
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"

	"github.com/google/uuid"
)

// ServiceLogDTO represents the database structure for persisting service
// log aggregates.
type ServiceLogDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        string    `gorm:"uniqueIndex"`
	VehicleID     uuid.UUID `gorm:"type:uuid;index"`
	Issue         string
	ScheduledDate time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	EstimatedCost float64
	Cost          float64
	Notes         string
	CancelReason  string
	Status        int `gorm:"index"`
	Version       int
}

// TableName specifies the database table name for service log entities.
func (ServiceLogDTO) TableName() string {
	return "service_logs"
}

// fromDomain converts a service log domain aggregate to its database
// representation.
func fromDomain(aggregate *servicelog.ServiceLog) ServiceLogDTO {
	return ServiceLogDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		VehicleID:     aggregate.VehicleID().Bytes(),
		Issue:         aggregate.Issue(),
		ScheduledDate: aggregate.ScheduledDate(),
		StartedAt:     aggregate.StartedAt(),
		CompletedAt:   aggregate.CompletedAt(),
		EstimatedCost: aggregate.EstimatedCost(),
		Cost:          aggregate.Cost(),
		Notes:         aggregate.Notes(),
		CancelReason:  aggregate.CancelReason(),
		Status:        int(aggregate.Status()),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database DTO to a service log domain aggregate using
// RestoreServiceLog.
func toDomain(dto ServiceLogDTO) (*servicelog.ServiceLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return servicelog.RestoreServiceLog(
		id,
		dto.Number,
		vehicleID,
		dto.Issue,
		dto.ScheduledDate,
		dto.StartedAt,
		dto.CompletedAt,
		dto.EstimatedCost,
		dto.Cost,
		dto.Notes,
		dto.CancelReason,
		servicelog.Status(dto.Status),
		dto.Version,
	)
}
