package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/services"
)

// DispatchTripCommandHandler handles putting trips in flight.
type DispatchTripCommandHandler struct {
	uowFactory TripUoWFactory
	validator  services.TripValidator
}

// NewDispatchTripCommandHandler creates a handler for trip dispatch.
func NewDispatchTripCommandHandler(uowFactory TripUoWFactory) DispatchTripCommandHandler {
	return DispatchTripCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTripValidator(),
	}
}

// Handle reloads the trip, its vehicle and its driver inside one
// transaction, re-checks assignability against the fresh snapshots and
// applies all three transitions as a single atomic unit. Two concurrent
// dispatches of trips sharing a vehicle cannot both commit: the loser
// fails the vehicle's version check and rolls back.
func (h DispatchTripCommandHandler) Handle(ctx context.Context, cmd DispatchTripCommand) (*trip.Trip, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := uow.TripRepository().Get(ctx, cmd.TripID())
	if err != nil {
		return nil, err
	}

	veh, err := uow.VehicleRepository().Get(ctx, t.VehicleID())
	if err != nil {
		return nil, err
	}

	drv, err := uow.DriverRepository().Get(ctx, t.DriverID())
	if err != nil {
		return nil, err
	}

	if err = h.validator.ValidateDispatch(veh, drv); err != nil {
		return nil, err
	}

	if err = t.Dispatch(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = veh.BeginTrip(t.ID(), drv.ID()); err != nil {
		return nil, err
	}

	if err = drv.BeginTrip(); err != nil {
		return nil, err
	}

	if err = uow.TripRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
