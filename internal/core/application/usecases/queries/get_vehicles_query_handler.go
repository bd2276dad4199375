package queries

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler retrieves vehicle pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle listing queries.
// Requires a GORM database connection for query execution.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of vehicles.
// Results are sorted by plate for consistent output.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			plate,
			model,
			max_load_capacity_kg,
			odometer_km,
			fuel_efficiency_km_per_liter,
			region,
			status,
			is_active,
			next_maintenance_due
		FROM vehicles
		WHERE 1=1`
	args := make([]any, 0, 4)

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, int(*query.Status()))
	}
	if query.Region() != "" {
		sql += ` AND region = ?`
		args = append(args, query.Region())
	}
	sql += `
		ORDER BY plate
		OFFSET ? LIMIT ?`
	args = append(args, query.Offset(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]GetVehiclesQueryResponse, 0)
	for rows.Next() {
		var resp GetVehiclesQueryResponse
		var id uuid.UUID
		var status int
		var nextDue *time.Time

		err = rows.Scan(
			&id,
			&resp.Plate,
			&resp.Model,
			&resp.MaxLoadCapacityKg,
			&resp.OdometerKm,
			&resp.FuelEfficiencyKmPerLiter,
			&resp.Region,
			&status,
			&resp.IsActive,
			&nextDue,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID
		resp.Status = vehicle.Status(status).String()
		resp.NextMaintenanceDue = nextDue
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
