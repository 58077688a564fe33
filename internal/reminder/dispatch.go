package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Deliverer sends a due reminder to its user. It posts in the original channel and
// falls back to a direct message; viaDM reports which path succeeded.
type Deliverer interface {
	DeliverReminder(ctx context.Context, r domain.Reminder) (viaDM bool, err error)
}

// DispatchJob claims due reminders and delivers them. It is scheduled on the worker pool.
type DispatchJob struct {
	repo      repository.Reminders
	deliverer Deliverer
	batch     int
	now       func() time.Time
}

// NewDispatchJob creates a dispatch job claiming at most batch reminders per run
func NewDispatchJob(repo repository.Reminders, deliverer Deliverer, batch int) *DispatchJob {
	if batch <= 0 {
		batch = DefaultDispatchBatch
	}
	return &DispatchJob{
		repo:      repo,
		deliverer: deliverer,
		batch:     batch,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Process implements worker.Job. Claimed reminders are already rescheduled or removed,
// so a failed delivery is logged and not retried.
func (j *DispatchJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	due, err := j.repo.ClaimDue(ctx, j.now(), j.batch)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindReminder).Inc()
		log.Error(LogMsgDispatchClaimFail, "error", err)
		return fmt.Errorf(ErrMsgClaimFailed, err)
	}
	if len(due) == 0 {
		return nil
	}
	log.Debug(LogMsgDispatchClaimed, "count", len(due))

	for _, r := range due {
		viaDM, err := j.deliverer.DeliverReminder(ctx, r)
		switch {
		case err != nil:
			metrics.RemindersDelivered.WithLabelValues(metrics.ResultError).Inc()
			log.Warn(LogMsgDeliveryFailed, "reminderID", r.ID, "userID", r.UserID, "error", err)
		case viaDM:
			metrics.RemindersDelivered.WithLabelValues(metrics.ResultDMFallback).Inc()
			log.Debug(LogMsgDeliveredViaDM, "reminderID", r.ID, "userID", r.UserID)
		default:
			metrics.RemindersDelivered.WithLabelValues(metrics.ResultSuccess).Inc()
		}
	}
	return nil
}
