package jobs

import (
	"context"
	"errors"
	"log/slog"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AllocationJob manages the scheduled allocation of queued order lines.
// Runs every second to match pending lines with available stock.
type AllocationJob struct {
	handler commands.AllocatePendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationJob creates a new job for allocating queued order lines.
// Uses AllocatePendingCommandHandler to process one queued line per tick.
func NewAllocationJob(handler commands.AllocatePendingCommandHandler, logger *slog.Logger) *AllocationJob {
	return &AllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "allocation_job"),
	}
}

// Start begins the allocation job to run every second.
func (j *AllocationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAllocatePendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios.
			// An empty queue is the steady state; out of stock means the
			// line waits for the next shipment.
			if !errors.Is(err, commands.ErrNoPendingLines) && !errors.Is(err, services.ErrOutOfStock) {
				j.logger.ErrorContext(ctx, "Allocation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation job started (running every second)")
	return nil
}

// Stop stops the allocation job.
func (j *AllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation job stopped")
}
