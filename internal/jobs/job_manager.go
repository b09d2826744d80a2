package jobs

import (
	"fmt"
	"log/slog"

	"dealership/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	penaltyAccrualJob *PenaltyAccrualJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	accruePenaltiesHandler *commands.AccruePenaltiesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		penaltyAccrualJob: NewPenaltyAccrualJob(accruePenaltiesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.penaltyAccrualJob.Start(); err != nil {
		return fmt.Errorf("failed to start penalty accrual job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.penaltyAccrualJob.Stop()
}
