// Package commands contains the lifecycle transitions that modify system
// state. Implements the Command pattern for write operations in the CQRS
// architecture. Every handler follows the same discipline: validate the
// command, open a unit of work, reload every touched entity through the
// transactional repositories, apply the domain transitions, and commit all
// writes as one atomic unit. On any error the transaction rolls back and the
// entity store is unchanged.
package commands

import (
	"context"

	"fleetcore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the narrowest composition it needs,
// which keeps the handler tests small.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// ServiceLogRepoFactory provides access to the service log repository within a transaction.
	ServiceLogRepoFactory interface {
		ServiceLogRepository() ports.ServiceLogRepository
	}

	// ExpenseLogRepoFactory provides access to the expense log repository within a transaction.
	ExpenseLogRepoFactory interface {
		ExpenseLogRepository() ports.ExpenseLogRepository
	}

	// SequenceFactory provides access to the transactional sequence generator.
	SequenceFactory interface {
		Sequences() ports.SequenceGenerator
	}

	// VehicleUoW manages transactions for vehicle-only operations
	// (registration, retirement).
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// DriverUoW manages transactions for driver-only operations
	// (registration, duty changes, deactivation).
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// TripUoW manages transactions for trip transitions, which couple the
	// trip with its vehicle and driver and, at creation, the sequence
	// generator.
	TripUoW interface {
		TxManager
		TripRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
		SequenceFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// ServiceUoW manages transactions for maintenance transitions, which
	// couple the service log with its vehicle.
	ServiceUoW interface {
		TxManager
		ServiceLogRepoFactory
		VehicleRepoFactory
		SequenceFactory
	}

	// ServiceUoWFactory creates new service unit of work instances.
	ServiceUoWFactory interface {
		Create() ServiceUoW
	}

	// ExpenseUoW manages transactions for expense recording, which couples
	// the new expense log with the vehicle's telemetry and, when linked,
	// the trip's fuel totals.
	ExpenseUoW interface {
		TxManager
		ExpenseLogRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
		TripRepoFactory
		SequenceFactory
	}

	// ExpenseUoWFactory creates new expense unit of work instances.
	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}
)
