package ports

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
// Update applies the same optimistic version check as VehicleRepository.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip under the optimistic
	// version check.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such trip exists.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// Delete removes a trip from storage. Only callers that verified the
	// Draft-only rule may invoke it.
	Delete(ctx context.Context, id kernel.UUID) error
}
