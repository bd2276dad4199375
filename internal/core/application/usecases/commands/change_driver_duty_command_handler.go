package commands

import (
	"context"

	"fleetcore/internal/core/domain/model/driver"
)

// ChangeDriverDutyCommandHandler handles duty status changes.
type ChangeDriverDutyCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverDutyCommandHandler creates a handler for duty changes.
func NewChangeDriverDutyCommandHandler(uowFactory DriverUoWFactory) ChangeDriverDutyCommandHandler {
	return ChangeDriverDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reloads the driver inside the transaction, applies the duty
// transition and persists the result under the optimistic version check.
func (h ChangeDriverDutyCommandHandler) Handle(ctx context.Context, cmd ChangeDriverDutyCommand) (*driver.Driver, error) {
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

	drv, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if cmd.OnDuty() {
		err = drv.GoOnDuty()
	} else {
		err = drv.GoOffDuty()
	}
	if err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
