package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/servicelog"
)

// StartServiceCommandHandler handles starting maintenance work.
type StartServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewStartServiceCommandHandler creates a handler for starting services.
func NewStartServiceCommandHandler(uowFactory ServiceUoWFactory) StartServiceCommandHandler {
	return StartServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reloads the service log inside the transaction, stamps the work
// start and persists it under the optimistic version check.
func (h StartServiceCommandHandler) Handle(ctx context.Context, cmd StartServiceCommand) (*servicelog.ServiceLog, error) {
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

	if err = svc.Start(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.ServiceLogRepository().Update(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}
