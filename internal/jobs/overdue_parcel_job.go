package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueParcelJob periodically sweeps active parcels whose estimated
// delivery time has passed and flags them with a DELIVERY_DELAYED event.
type OverdueParcelJob struct {
	handler  commands.FlagOverdueParcelsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueParcelJob creates a job that flags overdue parcels on the given
// cron schedule (six-field expression with seconds).
func NewOverdueParcelJob(
	handler commands.FlagOverdueParcelsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OverdueParcelJob {
	return &OverdueParcelJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_parcel_job"),
	}
}

// Start begins the overdue sweep on the configured schedule.
func (j *OverdueParcelJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewFlagOverdueParcelsCommand()

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue parcel sweep failed", "error", handleErr)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Flagged overdue parcels", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue parcel job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueParcelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue parcel job stopped")
}
