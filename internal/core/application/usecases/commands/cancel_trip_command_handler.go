package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/trip"
)

// CancelTripCommandHandler handles trip cancellation.
type CancelTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCancelTripCommandHandler creates a handler for trip cancellation.
func NewCancelTripCommandHandler(uowFactory TripUoWFactory) CancelTripCommandHandler {
	return CancelTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the trip. The vehicle and driver are released only when
// the trip held them, which is exactly when its status before the
// transition was Dispatched. A Draft trip claimed nothing, so cancelling
// it touches no other record.
func (h CancelTripCommandHandler) Handle(ctx context.Context, cmd CancelTripCommand) (*trip.Trip, error) {
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

	wasDispatched := t.Status() == trip.Dispatched

	if err = t.Cancel(time.Now().UTC(), cmd.Reason()); err != nil {
		return nil, err
	}

	if wasDispatched {
		veh, vehErr := uow.VehicleRepository().Get(ctx, t.VehicleID())
		if vehErr != nil {
			return nil, vehErr
		}

		drv, drvErr := uow.DriverRepository().Get(ctx, t.DriverID())
		if drvErr != nil {
			return nil, drvErr
		}

		if err = veh.ReleaseFromTrip(nil); err != nil {
			return nil, err
		}

		if err = drv.CancelTrip(); err != nil {
			return nil, err
		}

		if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
			return nil, err
		}

		if err = uow.DriverRepository().Update(ctx, drv); err != nil {
			return nil, err
		}
	}

	if err = uow.TripRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
