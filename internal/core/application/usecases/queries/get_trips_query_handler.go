package queries

import (
	"context"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripsQueryHandler retrieves trip pages from the database.
type GetTripsQueryHandler struct {
	db *gorm.DB
}

// NewGetTripsQueryHandler creates a handler for trip listing queries.
func NewGetTripsQueryHandler(db *gorm.DB) GetTripsQueryHandler {
	return GetTripsQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of trips.
// Results are sorted by trip number for consistent output.
func (h GetTripsQueryHandler) Handle(
	ctx context.Context,
	query GetTripsQuery,
) ([]GetTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			vehicle_id,
			driver_id,
			origin,
			destination,
			cargo_weight_kg,
			scheduled_start_time,
			status
		FROM trips
		WHERE 1=1`
	args := make([]any, 0, 3)

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, int(*query.Status()))
	}
	sql += `
		ORDER BY number
		OFFSET ? LIMIT ?`
	args = append(args, query.Offset(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]GetTripsQueryResponse, 0)
	for rows.Next() {
		var resp GetTripsQueryResponse
		var id, vehicleID, driverID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&vehicleID,
			&driverID,
			&resp.Origin,
			&resp.Destination,
			&resp.CargoWeightKg,
			&resp.ScheduledStartTime,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		resp.Status = trip.Status(status).String()
		trips = append(trips, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
