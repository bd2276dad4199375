package vehiclerepo

import (
	"context"
	"errors"

	"fleetcore/internal/adapters/out/postgres/pgerrors"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.MapWriteError("insert vehicle", "vehicle", aggregate.ID().String(), err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle under the optimistic version check.
// The write succeeds only when the stored version still matches the version
// the aggregate was loaded with; a zero row count means another transaction
// won the race.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrors.MapWriteError("update vehicle", "vehicle", aggregate.ID().String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrors.MapReadError("select vehicle", "vehicle", id.String(), err)
	}

	return toDomain(dto)
}

// GetByPlate retrieves a vehicle by its registration plate.
func (r *GormVehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate)
		}
		return nil, errs.NewStorageFailureError("select vehicle", err)
	}

	return toDomain(dto)
}
