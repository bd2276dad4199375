package expenserepo

import (
	"context"

	"fleetcore/internal/adapters/out/postgres/pgerrors"
	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormExpenseLogRepository implements ExpenseLogRepository using GORM.
type GormExpenseLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExpenseLogRepository creates a new GORM expense log repository.
func NewGormExpenseLogRepository(db *gorm.DB, tracker aggregateTracker) *GormExpenseLogRepository {
	return &GormExpenseLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new expense log to the database.
func (r *GormExpenseLogRepository) Add(ctx context.Context, aggregate *expenselog.ExpenseLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.MapWriteError("insert expense log", "expenseLog", aggregate.ID().String(), err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an expense log by ID.
func (r *GormExpenseLogRepository) Get(ctx context.Context, id kernel.UUID) (*expenselog.ExpenseLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExpenseLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrors.MapReadError("select expense log", "expenseLog", id.String(), err)
	}

	return toDomain(dto)
}
