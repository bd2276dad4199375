package ports

import (
	"context"

	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"
)

// ExpenseLogRepository defines the persistence contract for expense logs.
// Expense logs are append-only: there is no Update or Delete.
type ExpenseLogRepository interface {
	// Add persists a new expense log to storage.
	Add(ctx context.Context, aggregate *expenselog.ExpenseLog) error

	// Get retrieves an expense log by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such log exists.
	Get(ctx context.Context, id kernel.UUID) (*expenselog.ExpenseLog, error)
}
