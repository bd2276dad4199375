package queries

import (
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/pkg/guard"
)

var (
	ErrGetExpiringLicencesQueryIsNotConstructed = errors.New(
		"GetExpiringLicencesQuery must be created via NewGetExpiringLicencesQuery constructor",
	)
)

// GetExpiringLicencesQuery retrieves active drivers whose licence expires
// on or before the given deadline. Consumed by the licence expiry job.
type GetExpiringLicencesQuery struct {
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewGetExpiringLicencesQuery creates a query for licences expiring by the
// deadline.
func NewGetExpiringLicencesQuery(deadline time.Time) GetExpiringLicencesQuery {
	return GetExpiringLicencesQuery{
		deadline: deadline,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetExpiringLicencesQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiringLicencesQueryIsNotConstructed)
}

// Deadline returns the expiry cutoff.
func (q GetExpiringLicencesQuery) Deadline() time.Time {
	return q.deadline
}

// GetExpiringLicencesQueryResponse is the expiring licence read model.
type GetExpiringLicencesQueryResponse struct {
	ID            kernel.UUID
	Name          string
	LicenceNumber string
	LicenceExpiry time.Time
}
