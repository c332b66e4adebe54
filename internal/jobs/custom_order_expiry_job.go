// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 and are managed through JobManager,
// which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(expireCustomOrdersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CustomOrderExpiryJob periodically cancels pending custom orders whose
// delivery deadline passed without a seller answering. Runs every minute;
// the sweep is idempotent, so a missed or doubled tick is harmless.
type CustomOrderExpiryJob struct {
	handler commands.ExpireCustomOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCustomOrderExpiryJob creates a new job for expiring overdue custom orders.
func NewCustomOrderExpiryJob(
	handler commands.ExpireCustomOrdersCommandHandler,
	logger *slog.Logger,
) *CustomOrderExpiryJob {
	return &CustomOrderExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "custom_order_expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *CustomOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireCustomOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Custom order expiry command construction failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Custom order expiry job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Custom order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *CustomOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Custom order expiry job stopped")
}
