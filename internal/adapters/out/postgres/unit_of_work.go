// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work is the transaction boundary around one
// lifecycle transition: every repository obtained from it runs on the same
// database transaction, so a transition's reads observe a consistent
// snapshot and its writes commit or roll back as one atomic unit.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	veh, err := uow.VehicleRepository().Get(ctx, vehicleID)
//	if err != nil {
//	    return err
//	}
//
//	// apply domain transitions, write through the repositories
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"fleetcore/internal/adapters/out/postgres/driverrepo"
	"fleetcore/internal/adapters/out/postgres/expenserepo"
	"fleetcore/internal/adapters/out/postgres/servicerepo"
	"fleetcore/internal/adapters/out/postgres/triprepo"
	"fleetcore/internal/adapters/out/postgres/vehiclerepo"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by all created instances;
// each instance opens its own transaction.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the fleet
// repositories and the sequence generator. It tracks every aggregate
// written during the transaction, which keeps the door open for domain
// event publishing after commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not nest
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// VehicleRepository returns a vehicle repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.handle(), uow)
}

// DriverRepository returns a driver repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.handle(), uow)
}

// TripRepository returns a trip repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewGormTripRepository(uow.handle(), uow)
}

// ServiceLogRepository returns a service log repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ServiceLogRepository() ports.ServiceLogRepository {
	return servicerepo.NewGormServiceLogRepository(uow.handle(), uow)
}

// ExpenseLogRepository returns an expense log repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ExpenseLogRepository() ports.ExpenseLogRepository {
	return expenserepo.NewGormExpenseLogRepository(uow.handle(), uow)
}

// Sequences returns the sequence generator bound to the current
// transaction, so assigned numbers commit or roll back with the entity
// they were assigned to.
func (uow *GormUnitOfWork) Sequences() ports.SequenceGenerator {
	return NewGormSequenceGenerator(uow.handle())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on every write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
