package ports

import "context"

// Sequence kinds understood by the generator.
const (
	// TripSequence numbers trips (TRP-000042).
	TripSequence = "trip"
	// ServiceLogSequence numbers service logs (SRV-000007).
	ServiceLogSequence = "service_log"
	// ExpenseLogSequence numbers expense logs (EXP-000103).
	ExpenseLogSequence = "expense_log"
)

// SequenceGenerator hands out monotonically increasing numbers per entity
// kind. Next must increment atomically inside the unit of work's transaction
// so a rolled-back creation never burns a visible number and concurrent
// creators never observe a collision. Counting existing rows is explicitly
// not a valid implementation.
type SequenceGenerator interface {
	// Next returns the next number for the given kind, starting at 1.
	Next(ctx context.Context, kind string) (int64, error)
}
