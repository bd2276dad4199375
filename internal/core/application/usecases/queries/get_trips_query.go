package queries

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrGetTripsQueryIsNotConstructed = errors.New(
		"GetTripsQuery must be created via NewGetTripsQuery constructor",
	)
)

// GetTripsQuery retrieves a page of trips, optionally filtered by status.
type GetTripsQuery struct {
	status *trip.Status
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetTripsQuery creates a query for a page of trips.
// A nil status matches every status.
func NewGetTripsQuery(status *trip.Status, offset, limit int) (GetTripsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetTripsQuery{}, err
		}
	}
	if offset < 0 {
		return GetTripsQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if limit < 1 || limit > maxPageSize {
		return GetTripsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	return GetTripsQuery{
		status: status,
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetTripsQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q GetTripsQuery) Status() *trip.Status {
	return q.status
}

// Offset returns the number of rows to skip.
func (q GetTripsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetTripsQuery) Limit() int {
	return q.limit
}

// GetTripsQueryResponse is the trip read model.
type GetTripsQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	VehicleID          kernel.UUID
	DriverID           kernel.UUID
	Origin             string
	Destination        string
	CargoWeightKg      int
	ScheduledStartTime time.Time
	Status             string
}
