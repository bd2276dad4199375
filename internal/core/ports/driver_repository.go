package ports

import (
	"context"

	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Update applies the same optimistic version check as VehicleRepository.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver under the optimistic
	// version check.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
