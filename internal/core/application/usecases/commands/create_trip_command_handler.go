package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/services"
	"fleetcore/internal/core/ports"
)

// CreateTripCommandHandler handles trip planning.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
	validator  services.TripValidator
}

// NewCreateTripCommandHandler creates a handler for trip creation.
func NewCreateTripCommandHandler(uowFactory TripUoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTripValidator(),
	}
}

// Handle validates the vehicle and driver against the assignment rules,
// draws the trip number from the sequence service and persists the Draft
// trip. The sequence increment and the insert share one transaction, so a
// rolled-back creation never burns a visible number.
func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) (*trip.Trip, error) {
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

	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	drv, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = h.validator.ValidateCreation(veh, drv, cmd.CargoWeightKg(), time.Now().UTC()); err != nil {
		return nil, err
	}

	seq, err := uow.Sequences().Next(ctx, ports.TripSequence)
	if err != nil {
		return nil, err
	}

	newTrip, err := trip.NewTrip(
		cmd.TripID(),
		formatTripNumber(seq),
		cmd.VehicleID(),
		cmd.DriverID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.CargoWeightKg(),
		cmd.ScheduledStartTime(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TripRepository().Add(ctx, newTrip); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newTrip, nil
}
