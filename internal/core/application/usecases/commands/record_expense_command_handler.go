package commands

import (
	"context"
	"fmt"
	"time"

	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/ports"
	"fleetcore/internal/pkg/errs"
)

// RecordExpenseCommandHandler handles expense booking.
type RecordExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

// NewRecordExpenseCommandHandler creates a handler for expense recording.
func NewRecordExpenseCommandHandler(uowFactory ExpenseUoWFactory) RecordExpenseCommandHandler {
	return RecordExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle books the expense and folds every side effect into one
// transaction: the vehicle's odometer and fuel efficiency update and, for a
// fuel expense linked to a trip, the trip's fuel totals. Any rejection
// along the way rolls the whole unit back, including the sequence draw.
func (h RecordExpenseCommandHandler) Handle(ctx context.Context, cmd RecordExpenseCommand) (*expenselog.ExpenseLog, error) {
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

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return nil, err
	}

	seq, err := uow.Sequences().Next(ctx, ports.ExpenseLogSequence)
	if err != nil {
		return nil, err
	}

	number := formatExpenseLogNumber(seq)
	now := time.Now().UTC()

	// The stored reading is zero when the report carries none.
	var readingKm float64
	if cmd.OdometerReadingKm() != nil {
		readingKm = *cmd.OdometerReadingKm()
	}

	var expense *expenselog.ExpenseLog
	switch cmd.Category() {
	case expenselog.Fuel:
		expense, err = expenselog.NewFuelExpense(
			cmd.ExpenseLogID(),
			number,
			cmd.VehicleID(),
			cmd.DriverID(),
			cmd.TripID(),
			cmd.Liters(),
			cmd.CostPerLiter(),
			readingKm,
			cmd.Description(),
			now,
		)
	default:
		expense, err = expenselog.NewMiscExpense(
			cmd.ExpenseLogID(),
			number,
			cmd.VehicleID(),
			cmd.DriverID(),
			cmd.ExpenseType(),
			cmd.TotalCost(),
			readingKm,
			cmd.Description(),
			now,
		)
	}
	if err != nil {
		return nil, err
	}

	if cmd.OdometerReadingKm() != nil {
		distanceKm := readingKm - veh.OdometerKm()
		if err = veh.RecordOdometer(readingKm); err != nil {
			return nil, err
		}
		if cmd.Category() == expenselog.Fuel {
			veh.RecordFuelEfficiency(distanceKm, cmd.Liters())
		}

		if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
			return nil, err
		}
	}

	if cmd.Category() == expenselog.Fuel && cmd.TripID() != nil {
		t, tripErr := uow.TripRepository().Get(ctx, *cmd.TripID())
		if tripErr != nil {
			return nil, tripErr
		}

		if !t.VehicleID().IsEqual(cmd.VehicleID()) {
			return nil, errs.NewPreconditionFailedError(fmt.Sprintf(
				"trip %s does not belong to vehicle %s",
				t.Number(), veh.Plate(),
			))
		}

		t.AddFuel(cmd.Liters(), expense.TotalCost())
		if err = uow.TripRepository().Update(ctx, t); err != nil {
			return nil, err
		}
	}

	if err = uow.ExpenseLogRepository().Add(ctx, expense); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return expense, nil
}
