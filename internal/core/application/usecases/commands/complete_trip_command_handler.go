package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/trip"
)

// CompleteTripCommandHandler handles trip completion.
type CompleteTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCompleteTripCommandHandler creates a handler for trip completion.
func NewCompleteTripCommandHandler(uowFactory TripUoWFactory) CompleteTripCommandHandler {
	return CompleteTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle finishes the trip and releases the vehicle and the driver in the
// same transaction. The final odometer reading, when present, is applied
// to the vehicle under the monotonic odometer rule.
func (h CompleteTripCommandHandler) Handle(ctx context.Context, cmd CompleteTripCommand) (*trip.Trip, error) {
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

	payload := trip.CompletionPayload{
		FuelConsumedLiters: cmd.FuelConsumedLiters(),
		FuelCost:           cmd.FuelCost(),
		Revenue:            cmd.Revenue(),
	}
	if err = t.Complete(time.Now().UTC(), payload); err != nil {
		return nil, err
	}

	if err = veh.ReleaseFromTrip(cmd.FinalOdometerKm()); err != nil {
		return nil, err
	}

	if err = drv.CompleteTrip(); err != nil {
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
