package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripDetailsQueryHandler retrieves a single trip with its vehicle and
// driver denormalized in.
type GetTripDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetTripDetailsQueryHandler creates a handler for trip detail queries.
func NewGetTripDetailsQueryHandler(db *gorm.DB) GetTripDetailsQueryHandler {
	return GetTripDetailsQueryHandler{db: db}
}

// Handle executes the query to retrieve the trip.
// Returns errs.ErrObjectNotFound when the trip does not exist.
func (h GetTripDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetTripDetailsQuery,
) (GetTripDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			t.vehicle_id,
			v.plate,
			t.driver_id,
			d.name,
			t.origin,
			t.destination,
			t.cargo_weight_kg,
			t.scheduled_start_time,
			t.actual_start_time,
			t.actual_end_time,
			t.status,
			t.fuel_consumed_liters,
			t.fuel_cost,
			t.revenue,
			t.cancel_reason
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN drivers d ON d.id = t.driver_id
		WHERE t.id = ?
	`, query.TripID().Bytes()).Row()

	var resp GetTripDetailsQueryResponse
	var id, vehicleID, driverID uuid.UUID
	var status int
	var actualStart, actualEnd *time.Time

	err := row.Scan(
		&id,
		&resp.Number,
		&vehicleID,
		&resp.VehiclePlate,
		&driverID,
		&resp.DriverName,
		&resp.Origin,
		&resp.Destination,
		&resp.CargoWeightKg,
		&resp.ScheduledStartTime,
		&actualStart,
		&actualEnd,
		&status,
		&resp.FuelConsumedLiters,
		&resp.FuelCost,
		&resp.Revenue,
		&resp.CancelReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTripDetailsQueryResponse{}, errs.NewObjectNotFoundError("trip", query.TripID().String())
		}
		return GetTripDetailsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	resp.ActualStartTime = actualStart
	resp.ActualEndTime = actualEnd
	resp.Status = trip.Status(status).String()

	return resp, nil
}
