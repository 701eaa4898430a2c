package jobs

import (
	"context"
	"log/slog"

	"rentwheels/internal/usecase/commands"
)

// JobRunner holds the commands exercised by scheduled jobs.
type JobRunner struct {
	bookings commands.BookingCommands
	waitlist commands.WaitlistCommands
	logger   *slog.Logger
}

func NewJobRunner(bookings commands.BookingCommands, waitlist commands.WaitlistCommands, logger *slog.Logger) *JobRunner {
	return &JobRunner{
		bookings: bookings,
		waitlist: waitlist,
		logger:   logger,
	}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.logger.Info("Starting job", "job", jobName)
	jobFunc()
	jr.logger.Info("Job completed", "job", jobName)
}

// RefreshLateFees recalculates the late fee on every overdue booking.
func (jr *JobRunner) RefreshLateFees() {
	jr.runWithRecovery("RefreshLateFees", func() {
		ctx := context.Background()

		updated, err := jr.bookings.RefreshLateFees(ctx)
		if err != nil {
			jr.logger.Error("Failed to refresh late fees", "error", err)
			return
		}
		jr.logger.Info("Late fees refreshed", "bookings_updated", updated)
	})
}

// SweepWaitlist matches every active waitlist entry against current
// availability and notifies the holders whose window opened up.
func (jr *JobRunner) SweepWaitlist() {
	jr.runWithRecovery("SweepWaitlist", func() {
		ctx := context.Background()

		result, err := jr.waitlist.CheckAndNotifyAll(ctx)
		if err != nil {
			jr.logger.Error("Failed to sweep waitlist", "error", err)
			return
		}
		jr.logger.Info("Waitlist swept", "checked", result.Checked, "notified", result.Notified)
	})
}
