package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetcore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// licenceExpiryWindow is how far ahead the job warns about expiring
// licences.
const licenceExpiryWindow = 30 * 24 * time.Hour

// LicenceExpiryJob surfaces drivers whose licence expires within the next
// thirty days. Runs daily and logs each driver; the job never mutates
// state.
type LicenceExpiryJob struct {
	handler queries.GetExpiringLicencesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLicenceExpiryJob creates the daily licence expiry check.
func NewLicenceExpiryJob(handler queries.GetExpiringLicencesQueryHandler, logger *slog.Logger) *LicenceExpiryJob {
	return &LicenceExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "licence_expiry_job"),
	}
}

// Start begins the licence expiry job to run daily at 06:00.
func (j *LicenceExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", func() {
		ctx := context.Background()
		query := queries.NewGetExpiringLicencesQuery(time.Now().UTC().Add(licenceExpiryWindow))

		expiring, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Licence expiry job failed", "error", err)
			return
		}

		for _, d := range expiring {
			j.logger.WarnContext(ctx, "Driver licence expiring soon",
				"driver_id", d.ID.String(),
				"name", d.Name,
				"licence_number", d.LicenceNumber,
				"expires", d.LicenceExpiry,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Licence expiry job started (running daily)")
	return nil
}

// Stop stops the licence expiry job.
func (j *LicenceExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Licence expiry job stopped")
}
