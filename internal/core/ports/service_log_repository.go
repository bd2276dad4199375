package ports

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
)

// ServiceLogRepository defines the persistence contract for service log
// aggregates. Update applies the same optimistic version check as
// VehicleRepository.
type ServiceLogRepository interface {
	// Add persists a new service log aggregate to storage.
	Add(ctx context.Context, aggregate *servicelog.ServiceLog) error

	// Update persists changes to an existing service log under the
	// optimistic version check.
	Update(ctx context.Context, aggregate *servicelog.ServiceLog) error

	// Get retrieves a service log by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such log exists.
	Get(ctx context.Context, id kernel.UUID) (*servicelog.ServiceLog, error)

	// Delete removes a service log from storage. Only callers that verified
	// the New-only rule may invoke it.
	Delete(ctx context.Context, id kernel.UUID) error
}
