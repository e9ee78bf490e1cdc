// Package sweep is the safety net for completion notifications. It
// re-enqueues a completion job for every approved booking that has
// already ended, catching bookings whose jobs were lost or that were
// approved after their window closed.
package sweep

import (
	"context"
	"time"

	"classroom/internal/notifications/queue"
	"classroom/pkg/config"
	"classroom/pkg/model"
)

// EndedBookingSource lists approved bookings whose window closed before
// a given instant.
type EndedBookingSource interface {
	FindEndedBefore(ctx context.Context, t time.Time, status string) ([]*model.Booking, error)
}

type Sweep struct {
	cfg      *config.Config
	bookings EndedBookingSource
	queue    queue.Queue
}

func New(cfg *config.Config, bookings EndedBookingSource, q queue.Queue) *Sweep {
	return &Sweep{cfg: cfg, bookings: bookings, queue: q}
}

// Run enqueues an immediate completion job for each ended approved
// booking. Duplicate completion mail for a booking already handled by
// its scheduled job is accepted; losing the notice is worse.
func (s *Sweep) Run(ctx context.Context, now time.Time) error {
	bookings, err := s.bookings.FindEndedBefore(ctx, now, model.StatusApproved)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		if err := s.queue.Enqueue(ctx, booking.ID, model.KindCompletion, now); err != nil {
			s.cfg.Log.Warn("failed to enqueue sweep completion",
				"booking_id", booking.ID,
				"error", err,
			)
			continue
		}
	}

	if len(bookings) > 0 {
		s.cfg.Log.Info("sweep enqueued completion notices", "count", len(bookings))
	}
	return nil
}
