// Package jobs provides scheduled background tasks for the fleet system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic read-only checks the fleet service performs.
//
// # Available Jobs
//
// 1. MaintenanceReminderJob - Runs hourly to log vehicles past their scheduled maintenance date
// 2. LicenceExpiryJob - Runs daily to log drivers whose licence expires within thirty days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(maintenanceDueHandler, expiringLicencesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only read: they consume query handlers and log what they find.
// A failed run is logged and retried on the next tick; a failed job start
// stops any already running jobs.
package jobs
