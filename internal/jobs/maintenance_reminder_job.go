package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetcore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MaintenanceReminderJob surfaces vehicles that are past their scheduled
// maintenance date. Runs every hour and logs each overdue vehicle; the job
// never mutates state.
type MaintenanceReminderJob struct {
	handler queries.GetMaintenanceDueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMaintenanceReminderJob creates the hourly maintenance reminder.
func NewMaintenanceReminderJob(handler queries.GetMaintenanceDueQueryHandler, logger *slog.Logger) *MaintenanceReminderJob {
	return &MaintenanceReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "maintenance_reminder_job"),
	}
}

// Start begins the maintenance reminder job to run at the top of every hour.
func (j *MaintenanceReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetMaintenanceDueQuery(time.Now().UTC())

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Maintenance reminder job failed", "error", err)
			return
		}

		for _, v := range overdue {
			j.logger.WarnContext(ctx, "Vehicle maintenance overdue",
				"vehicle_id", v.ID.String(),
				"plate", v.Plate,
				"region", v.Region,
				"due", v.NextMaintenanceDue,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance reminder job started (running hourly)")
	return nil
}

// Stop stops the maintenance reminder job.
func (j *MaintenanceReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance reminder job stopped")
}
