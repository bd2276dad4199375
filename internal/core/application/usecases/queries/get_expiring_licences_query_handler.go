package queries

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpiringLicencesQueryHandler retrieves drivers with expiring licences
// from the database.
type GetExpiringLicencesQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiringLicencesQueryHandler creates a handler for licence expiry
// queries.
func NewGetExpiringLicencesQueryHandler(db *gorm.DB) GetExpiringLicencesQueryHandler {
	return GetExpiringLicencesQueryHandler{db: db}
}

// Handle executes the query. Drivers without a tracked expiry date never
// match. Results are sorted by expiry date, soonest first.
func (h GetExpiringLicencesQueryHandler) Handle(
	ctx context.Context,
	query GetExpiringLicencesQuery,
) ([]GetExpiringLicencesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			licence_number,
			licence_expiry
		FROM drivers
		WHERE is_active
		  AND licence_expiry IS NOT NULL
		  AND licence_expiry <= ?
		ORDER BY licence_expiry
	`, query.Deadline()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetExpiringLicencesQueryResponse, 0)
	for rows.Next() {
		var resp GetExpiringLicencesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.LicenceNumber,
			&resp.LicenceExpiry,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
