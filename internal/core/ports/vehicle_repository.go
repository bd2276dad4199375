// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
//
// Update applies an optimistic version check: it succeeds only when the
// stored version still matches the aggregate's loaded version, and returns
// errs.ErrConcurrencyConflict otherwise. This is what turns a lost race
// between two transitions into a retryable error instead of a silent
// overwrite.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle under the optimistic
	// version check described above.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByPlate retrieves a vehicle by its registration plate.
	// Returns errs.ErrObjectNotFound when no such vehicle exists.
	GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
}
