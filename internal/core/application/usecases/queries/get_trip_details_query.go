package queries

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrGetTripDetailsQueryIsNotConstructed = errors.New(
		"GetTripDetailsQuery must be created via NewGetTripDetailsQuery constructor",
	)
)

// GetTripDetailsQuery retrieves one trip joined with its vehicle plate and
// driver name.
type GetTripDetailsQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripDetailsQuery creates a query for a single trip's details.
func NewGetTripDetailsQuery(tripID kernel.UUID) (GetTripDetailsQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripDetailsQuery{}, err
	}

	return GetTripDetailsQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetTripDetailsQueryIsNotConstructed)
}

// TripID returns the trip to load.
func (q GetTripDetailsQuery) TripID() kernel.UUID {
	return q.tripID
}

// GetTripDetailsQueryResponse is the detailed trip read model.
type GetTripDetailsQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	VehicleID          kernel.UUID
	VehiclePlate       string
	DriverID           kernel.UUID
	DriverName         string
	Origin             string
	Destination        string
	CargoWeightKg      int
	ScheduledStartTime time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	Status             string
	FuelConsumedLiters float64
	FuelCost           float64
	Revenue            float64
	CancelReason       string
}
