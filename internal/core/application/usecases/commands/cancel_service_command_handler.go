package commands

import (
	"context"

	"fleetcore/internal/core/domain/model/servicelog"
)

// CancelServiceCommandHandler handles aborting maintenance records.
type CancelServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewCancelServiceCommandHandler creates a handler for service cancellation.
func NewCancelServiceCommandHandler(uowFactory ServiceUoWFactory) CancelServiceCommandHandler {
	return CancelServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the log and returns the vehicle to Available in the same
// transaction. The vehicle's maintenance dates stay as they were, since no
// maintenance happened.
func (h CancelServiceCommandHandler) Handle(ctx context.Context, cmd CancelServiceCommand) (*servicelog.ServiceLog, error) {
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

	if err = svc.Cancel(cmd.Reason()); err != nil {
		return nil, err
	}

	veh, err := uow.VehicleRepository().Get(ctx, svc.VehicleID())
	if err != nil {
		return nil, err
	}

	if err = veh.ExitShop(); err != nil {
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
