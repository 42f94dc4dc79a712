package jobs

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CargoInspectionJob periodically sweeps every booked cargo and recomputes
// its delivery snapshot. Registration already inspects the cargo it touched;
// the sweep catches the rest, e.g. a cargo whose itinerary was replaced
// without any new handling.
type CargoInspectionJob struct {
	handler commands.InspectCargoCommandHandler
	cargos  ports.CargoRepository
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCargoInspectionJob creates a job that inspects all cargos every minute.
func NewCargoInspectionJob(
	handler commands.InspectCargoCommandHandler,
	cargos ports.CargoRepository,
	logger *slog.Logger,
) *CargoInspectionJob {
	return &CargoInspectionJob{
		handler: handler,
		cargos:  cargos,
		cron:    cron.New(),
		logger:  logger.With("component", "cargo_inspection_job"),
	}
}

// Start begins the inspection sweep on a once-a-minute schedule.
func (j *CargoInspectionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cargo inspection job started (running every minute)")
	return nil
}

// Stop stops the inspection job.
func (j *CargoInspectionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cargo inspection job stopped")
}

func (j *CargoInspectionJob) sweep() {
	ctx := context.Background()

	cargos, err := j.cargos.GetAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cargo inspection sweep failed to list cargos", "error", err)
		return
	}

	for _, aggregate := range cargos {
		// A claimed cargo's lifecycle is over; nothing left to notice.
		if aggregate.Delivery().TransportStatus() == cargo.Claimed {
			continue
		}

		cmd, err := commands.NewInspectCargoCommand(aggregate.TrackingID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build inspection command",
				"trackingId", aggregate.TrackingID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cargo inspection failed",
				"trackingId", aggregate.TrackingID().String(), "error", err)
		}
	}
}
