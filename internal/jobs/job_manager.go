package jobs

import (
	"fmt"
	"log/slog"

	"shippix/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	handoffSweepJob *HandoffSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepHandoffsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		handoffSweepJob: NewHandoffSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.handoffSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start handoff sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.handoffSweepJob.Stop()
}
