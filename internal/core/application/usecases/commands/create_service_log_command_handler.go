package commands

import (
	"context"
	"time"

	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/ports"
)

// CreateServiceLogCommandHandler handles opening maintenance records.
type CreateServiceLogCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewCreateServiceLogCommandHandler creates a handler for service log creation.
func NewCreateServiceLogCommandHandler(uowFactory ServiceUoWFactory) CreateServiceLogCommandHandler {
	return CreateServiceLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sends the vehicle InShop, draws the log number from the sequence
// service and persists the New log, all in one transaction. A vehicle that
// is already InShop or OnTrip rejects the transition and nothing is written.
func (h CreateServiceLogCommandHandler) Handle(ctx context.Context, cmd CreateServiceLogCommand) (*servicelog.ServiceLog, error) {
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

	if err = veh.EnterShop(time.Now().UTC()); err != nil {
		return nil, err
	}

	seq, err := uow.Sequences().Next(ctx, ports.ServiceLogSequence)
	if err != nil {
		return nil, err
	}

	newLog, err := servicelog.NewServiceLog(
		cmd.ServiceLogID(),
		formatServiceLogNumber(seq),
		cmd.VehicleID(),
		cmd.Issue(),
		cmd.ScheduledDate(),
		cmd.EstimatedCost(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ServiceLogRepository().Add(ctx, newLog); err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newLog, nil
}
