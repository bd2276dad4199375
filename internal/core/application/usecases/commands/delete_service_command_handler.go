package commands

import (
	"context"
)

// DeleteServiceCommandHandler handles deletion of unstarted service logs.
type DeleteServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewDeleteServiceCommandHandler creates a handler for service log deletion.
func NewDeleteServiceCommandHandler(uowFactory ServiceUoWFactory) DeleteServiceCommandHandler {
	return DeleteServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the New-only rule, removes the log and returns the
// vehicle to Available in the same transaction. Opening the log sent the
// vehicle InShop, so deleting the log has to undo that claim.
func (h DeleteServiceCommandHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.ServiceLogRepository().Get(ctx, cmd.ServiceLogID())
	if err != nil {
		return err
	}

	if err = svc.Status().ValidateCanDelete(); err != nil {
		return err
	}

	veh, err := uow.VehicleRepository().Get(ctx, svc.VehicleID())
	if err != nil {
		return err
	}

	if err = veh.ExitShop(); err != nil {
		return err
	}

	if err = uow.ServiceLogRepository().Delete(ctx, svc.ID()); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
