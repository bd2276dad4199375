package queries

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrGetMaintenanceDueQueryIsNotConstructed = errors.New(
		"GetMaintenanceDueQuery must be created via NewGetMaintenanceDueQuery constructor",
	)
)

// GetMaintenanceDueQuery retrieves active vehicles whose next maintenance
// date has passed. Consumed by the maintenance reminder job.
type GetMaintenanceDueQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetMaintenanceDueQuery creates a query for overdue vehicles as of the
// given moment.
func NewGetMaintenanceDueQuery(asOf time.Time) GetMaintenanceDueQuery {
	return GetMaintenanceDueQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMaintenanceDueQuery) Validate() error {
	return q.guard.Validate(ErrGetMaintenanceDueQueryIsNotConstructed)
}

// AsOf returns the reference moment.
func (q GetMaintenanceDueQuery) AsOf() time.Time {
	return q.asOf
}

// GetMaintenanceDueQueryResponse is the overdue vehicle read model.
type GetMaintenanceDueQueryResponse struct {
	ID                 kernel.UUID
	Plate              string
	Model              string
	Region             string
	NextMaintenanceDue time.Time
}
