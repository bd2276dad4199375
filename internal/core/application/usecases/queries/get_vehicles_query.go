package queries

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"
	"fleetcore/internal/pkg/errs"
	"fleetcore/internal/pkg/guard"
)

const (
	// maxPageSize caps a single result page.
	maxPageSize = 200
)

var (
	ErrGetVehiclesQueryIsNotConstructed = errors.New(
		"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
	)
)

// GetVehiclesQuery retrieves a page of fleet vehicles.
// Both filters are optional: a nil status matches every status and an empty
// region matches every region.
//
// Example:
//
//	status := vehicle.Available
//	query, err := NewGetVehiclesQuery(&status, "north", 0, 50)
//	if err != nil {
//	    return err
//	}
//
//	vehicles, err := NewGetVehiclesQueryHandler(db).Handle(ctx, query)
type GetVehiclesQuery struct {
	status *vehicle.Status
	region string
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query for a page of vehicles.
func NewGetVehiclesQuery(status *vehicle.Status, region string, offset, limit int) (GetVehiclesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetVehiclesQuery{}, err
		}
	}
	if offset < 0 {
		return GetVehiclesQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if limit < 1 || limit > maxPageSize {
		return GetVehiclesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	return GetVehiclesQuery{
		status: status,
		region: region,
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q GetVehiclesQuery) Status() *vehicle.Status {
	return q.status
}

// Region returns the region filter, possibly empty.
func (q GetVehiclesQuery) Region() string {
	return q.region
}

// Offset returns the number of rows to skip.
func (q GetVehiclesQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetVehiclesQuery) Limit() int {
	return q.limit
}

// GetVehiclesQueryResponse is the vehicle read model.
type GetVehiclesQueryResponse struct {
	ID                       kernel.UUID
	Plate                    string
	Model                    string
	MaxLoadCapacityKg        int
	OdometerKm               float64
	FuelEfficiencyKmPerLiter float64
	Region                   string
	Status                   string
	IsActive                 bool
	NextMaintenanceDue       *time.Time
}
