package usecase

import (
	"context"
)

// DueCheckSummary reports what one due-reminder sweep did.
type DueCheckSummary struct {
	Processed int
	Sent      int
	Failed    int
}

// JobsUsecase holds the periodic pipeline jobs. Each run reads fresh state
// from the store; record-level failures are recorded on the documents and
// never abort the batch, while a failed initial query propagates so the
// scheduler's retry applies.
type JobsUsecase interface {
	// RunDueReminderCheck dispatches notifications for reminders whose due
	// date falls within the lookahead window and batch-writes bookkeeping for
	// every processed reminder regardless of outcome.
	RunDueReminderCheck(ctx context.Context) (*DueCheckSummary, error)

	// RunCleanup deletes reminders completed longer ago than the retention
	// period, in a capped batch; returns the number deleted.
	RunCleanup(ctx context.Context) (int, error)

	// RunMilestoneCheck celebrates peaceful-days streak milestones, at most
	// once per couple per calendar day; returns the number celebrated.
	RunMilestoneCheck(ctx context.Context) (int, error)
}
