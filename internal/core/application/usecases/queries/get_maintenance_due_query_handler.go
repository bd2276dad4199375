package queries

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMaintenanceDueQueryHandler retrieves vehicles past their maintenance
// date from the database.
type GetMaintenanceDueQueryHandler struct {
	db *gorm.DB
}

// NewGetMaintenanceDueQueryHandler creates a handler for maintenance due
// queries.
func NewGetMaintenanceDueQueryHandler(db *gorm.DB) GetMaintenanceDueQueryHandler {
	return GetMaintenanceDueQueryHandler{db: db}
}

// Handle executes the query. Vehicles without a scheduled next maintenance
// are never due. Results are sorted by due date, most overdue first.
func (h GetMaintenanceDueQueryHandler) Handle(
	ctx context.Context,
	query GetMaintenanceDueQuery,
) ([]GetMaintenanceDueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			model,
			region,
			next_maintenance_due
		FROM vehicles
		WHERE is_active
		  AND next_maintenance_due IS NOT NULL
		  AND next_maintenance_due <= ?
		ORDER BY next_maintenance_due
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]GetMaintenanceDueQueryResponse, 0)
	for rows.Next() {
		var resp GetMaintenanceDueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Plate,
			&resp.Model,
			&resp.Region,
			&resp.NextMaintenanceDue,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
