package jobs

import (
	"fmt"
	"log/slog"

	"fleetcore/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	maintenanceReminderJob *MaintenanceReminderJob
	licenceExpiryJob       *LicenceExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	maintenanceDueHandler queries.GetMaintenanceDueQueryHandler,
	expiringLicencesHandler queries.GetExpiringLicencesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		maintenanceReminderJob: NewMaintenanceReminderJob(maintenanceDueHandler, logger),
		licenceExpiryJob:       NewLicenceExpiryJob(expiringLicencesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.maintenanceReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start maintenance reminder job: %w", err)
	}

	if err := jm.licenceExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.maintenanceReminderJob.Stop()
		return fmt.Errorf("failed to start licence expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.maintenanceReminderJob.Stop()
	jm.licenceExpiryJob.Stop()
}
