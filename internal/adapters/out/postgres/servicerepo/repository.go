package servicerepo

import (
	"context"

	"fleetcore/internal/adapters/out/postgres/pgerrors"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceLogRepository implements ServiceLogRepository using GORM.
type GormServiceLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceLogRepository creates a new GORM service log repository.
func NewGormServiceLogRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceLogRepository {
	return &GormServiceLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service log to the database.
func (r *GormServiceLogRepository) Add(ctx context.Context, aggregate *servicelog.ServiceLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.MapWriteError("insert service log", "serviceLog", aggregate.ID().String(), err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service log under the optimistic version check.
func (r *GormServiceLogRepository) Update(ctx context.Context, aggregate *servicelog.ServiceLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&ServiceLogDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.MapWriteError("update service log", "serviceLog", aggregate.ID().String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("serviceLog", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service log by ID.
func (r *GormServiceLogRepository) Get(ctx context.Context, id kernel.UUID) (*servicelog.ServiceLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrors.MapReadError("select service log", "serviceLog", id.String(), err)
	}

	return toDomain(dto)
}

// Delete removes a service log from the database.
func (r *GormServiceLogRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceLogDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrors.MapWriteError("delete service log", "serviceLog", id.String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceLog", id.String())
	}

	return nil
}
