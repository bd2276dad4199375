// Package expenserepo provides data transfer objects and mapping functions
// for expense log persistence. Expense logs are append-only, so this
// package only inserts and reads.
package expenserepo

import (
	"time"

	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExpenseLogDTO represents the database structure for persisting expense
// logs.
type ExpenseLogDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number            string     `gorm:"uniqueIndex"`
	VehicleID         uuid.UUID  `gorm:"type:uuid;index"`
	DriverID          uuid.UUID  `gorm:"type:uuid;index"`
	TripID            *uuid.UUID `gorm:"type:uuid;index"`
	Category          int
	Liters            float64
	CostPerLiter      float64
	TotalCost         float64
	ExpenseType       string
	OdometerReadingKm float64
	Description       string
	RecordedAt        time.Time
}

// TableName specifies the database table name for expense log entities.
func (ExpenseLogDTO) TableName() string {
	return "expense_logs"
}

// fromDomain converts an expense log domain aggregate to its database
// representation.
func fromDomain(aggregate *expenselog.ExpenseLog) ExpenseLogDTO {
	var tripID *uuid.UUID
	if id := aggregate.TripID(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	return ExpenseLogDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number(),
		VehicleID:         aggregate.VehicleID().Bytes(),
		DriverID:          aggregate.DriverID().Bytes(),
		TripID:            tripID,
		Category:          int(aggregate.Category()),
		Liters:            aggregate.Liters(),
		CostPerLiter:      aggregate.CostPerLiter(),
		TotalCost:         aggregate.TotalCost(),
		ExpenseType:       aggregate.ExpenseType(),
		OdometerReadingKm: aggregate.OdometerReadingKm(),
		Description:       aggregate.Description(),
		RecordedAt:        aggregate.RecordedAt(),
	}
}

// toDomain converts a database DTO to an expense log domain aggregate using
// RestoreExpenseLog.
func toDomain(dto ExpenseLogDTO) (*expenselog.ExpenseLog, error) {
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

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	return expenselog.RestoreExpenseLog(
		id,
		dto.Number,
		vehicleID,
		driverID,
		tripID,
		expenselog.Category(dto.Category),
		dto.Liters,
		dto.CostPerLiter,
		dto.TotalCost,
		dto.ExpenseType,
		dto.OdometerReadingKm,
		dto.Description,
		dto.RecordedAt,
	)
}
