package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary around one lifecycle
// transition. Every repository obtained from it is bound to the same
// transaction, so a transition's reads observe a consistent snapshot and its
// writes commit or roll back as one unit. Client code must explicitly manage
// the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// TripRepository returns a TripRepository bound to the current transaction.
	TripRepository() TripRepository

	// ServiceLogRepository returns a ServiceLogRepository bound to the current transaction.
	ServiceLogRepository() ServiceLogRepository

	// ExpenseLogRepository returns an ExpenseLogRepository bound to the current transaction.
	ExpenseLogRepository() ExpenseLogRepository

	// Sequences returns the SequenceGenerator bound to the current
	// transaction, so assigned numbers commit or roll back with the entity
	// they were assigned to.
	Sequences() SequenceGenerator
}
