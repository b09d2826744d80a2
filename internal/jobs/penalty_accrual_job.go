package jobs

import (
	"context"
	"log/slog"
	"time"

	"dealership/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PenaltyAccrualJob sweeps the payment ledger on a schedule, marking unpaid
// payments past their due date OVERDUE and accruing the daily penalty.
type PenaltyAccrualJob struct {
	handler *commands.AccruePenaltiesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPenaltyAccrualJob creates the hourly penalty sweep.
// Uses AccruePenaltiesCommandHandler to process overdue payments.
func NewPenaltyAccrualJob(handler *commands.AccruePenaltiesCommandHandler, logger *slog.Logger) *PenaltyAccrualJob {
	return &PenaltyAccrualJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "penalty_accrual_job"),
	}
}

// Start schedules the sweep at the top of every hour.
func (j *PenaltyAccrualJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewAccruePenaltiesCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Penalty accrual job could not build command", "error", err)
			return
		}

		accrued, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Penalty accrual job failed", "error", err)
			return
		}

		if accrued > 0 {
			j.logger.InfoContext(ctx, "Penalty accrual job swept overdue payments", "count", accrued)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Penalty accrual job started (running hourly)")
	return nil
}

// Stop stops the penalty sweep.
func (j *PenaltyAccrualJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Penalty accrual job stopped")
}
