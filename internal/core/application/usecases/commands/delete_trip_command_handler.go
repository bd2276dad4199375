package commands

import (
	"context"
)

// DeleteTripCommandHandler handles deletion of draft trips.
type DeleteTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewDeleteTripCommandHandler creates a handler for trip deletion.
func NewDeleteTripCommandHandler(uowFactory TripUoWFactory) DeleteTripCommandHandler {
	return DeleteTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reloads the trip, verifies the Draft-only rule and removes it.
func (h DeleteTripCommandHandler) Handle(ctx context.Context, cmd DeleteTripCommand) error {
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

	t, err := uow.TripRepository().Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	if err = t.Status().ValidateCanDelete(); err != nil {
		return err
	}

	if err = uow.TripRepository().Delete(ctx, t.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
