package jobs

import (
	"context"
	"log/slog"

	"shippix/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep at the top of every minute.
const DefaultSweepSchedule = "0 * * * * *"

// HandoffSweepJob periodically removes handoffs that expired before any page
// redeemed them.
type HandoffSweepJob struct {
	handler  commands.SweepHandoffsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHandoffSweepJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule falls back to DefaultSweepSchedule.
func NewHandoffSweepJob(handler commands.SweepHandoffsCommandHandler, schedule string, logger *slog.Logger) *HandoffSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &HandoffSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "handoff_sweep_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *HandoffSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Handoff sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *HandoffSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Handoff sweep job stopped")
}

func (j *HandoffSweepJob) run() {
	ctx := context.Background()
	if _, err := j.handler.Handle(ctx, commands.NewSweepHandoffsCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Handoff sweep job failed", "error", err)
	}
}
