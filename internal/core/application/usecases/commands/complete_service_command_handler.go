package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/servicelog"
)

// CompleteServiceCommandHandler handles closing maintenance records.
type CompleteServiceCommandHandler struct {
	uowFactory          ServiceUoWFactory
	maintenanceInterval time.Duration
}

// NewCompleteServiceCommandHandler creates a handler for service completion.
// maintenanceInterval is how far ahead the next maintenance gets scheduled
// once this one closes.
func NewCompleteServiceCommandHandler(
	uowFactory ServiceUoWFactory,
	maintenanceInterval time.Duration,
) CompleteServiceCommandHandler {
	return CompleteServiceCommandHandler{
		uowFactory:          uowFactory,
		maintenanceInterval: maintenanceInterval,
	}
}

// Handle closes the log and returns the vehicle to Available in the same
// transaction, stamping the maintenance dates and, when a shop odometer
// reading was taken, applying it under the monotonic odometer rule.
func (h CompleteServiceCommandHandler) Handle(ctx context.Context, cmd CompleteServiceCommand) (*servicelog.ServiceLog, error) {
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

	svc, err := uow.ServiceLogRepository().Get(ctx, cmd.ServiceLogID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = svc.Complete(now, cmd.Cost(), cmd.Notes()); err != nil {
		return nil, err
	}

	veh, err := uow.VehicleRepository().Get(ctx, svc.VehicleID())
	if err != nil {
		return nil, err
	}

	if cmd.OdometerKm() != nil {
		if err = veh.RecordOdometer(*cmd.OdometerKm()); err != nil {
			return nil, err
		}
	}

	if err = veh.CompleteMaintenance(now, now.Add(h.maintenanceInterval)); err != nil {
		return nil, err
	}

	if err = uow.ServiceLogRepository().Update(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}
