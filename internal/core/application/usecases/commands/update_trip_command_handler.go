package commands

import (
	"context"
	"fmt"

	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/pkg/errs"
)

// UpdateTripCommandHandler handles edits to draft trips.
type UpdateTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewUpdateTripCommandHandler creates a handler for trip edits.
func NewUpdateTripCommandHandler(uowFactory TripUoWFactory) UpdateTripCommandHandler {
	return UpdateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new details to a Draft trip. The cargo weight is
// re-checked against the assigned vehicle's capacity, since the edit can
// raise it past what was validated at creation.
func (h UpdateTripCommandHandler) Handle(ctx context.Context, cmd UpdateTripCommand) (*trip.Trip, error) {
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

	if cmd.CargoWeightKg() > veh.MaxLoadCapacityKg() {
		return nil, errs.NewPreconditionFailedError(fmt.Sprintf(
			"cargo weight %dkg exceeds vehicle capacity %dkg",
			cmd.CargoWeightKg(), veh.MaxLoadCapacityKg(),
		))
	}

	if err = t.UpdateDetails(
		cmd.Origin(),
		cmd.Destination(),
		cmd.CargoWeightKg(),
		cmd.ScheduledStartTime(),
	); err != nil {
		return nil, err
	}

	if err = uow.TripRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
