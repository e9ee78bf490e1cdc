// Package scheduler plans the three lifecycle notifications for an
// approved booking: a reminder ahead of the start, one at the start, and
// one at the end.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom/internal/notifications/queue"
	"classroom/pkg/config"
	"classroom/pkg/model"
)

type Scheduler struct {
	cfg   *config.Config
	queue queue.Queue
}

func New(cfg *config.Config, q queue.Queue) *Scheduler {
	return &Scheduler{cfg: cfg, queue: q}
}

// Schedule enqueues the three notification jobs for the booking. Only
// approved bookings are scheduled; the pre-start job is enqueued even
// when its due time is already past, the next poll fires it immediately.
func (s *Scheduler) Schedule(ctx context.Context, booking *model.Booking) error {
	if booking.Status != model.StatusApproved {
		return fmt.Errorf("booking %s is not approved, refusing to schedule", booking.ID)
	}

	jobs := []struct {
		kind  model.NotificationKind
		dueAt time.Time
	}{
		{model.KindPreStart, booking.Start.Add(-s.cfg.NotificationLead)},
		{model.KindStart, booking.Start},
		{model.KindCompletion, booking.End},
	}

	var errs []error
	for _, job := range jobs {
		if err := s.queue.Enqueue(ctx, booking.ID, job.kind, job.dueAt); err != nil {
			errs = append(errs, fmt.Errorf("enqueue %s: %w", job.kind, err))
			continue
		}
		s.cfg.Log.Debug("notification scheduled",
			"booking_id", booking.ID,
			"kind", job.kind,
			"due_at", job.dueAt,
		)
	}

	return errors.Join(errs...)
}
