// Package worker drives the notification pipeline: it polls the queue
// for due jobs, hands them to the dispatcher, and periodically runs the
// completion sweep.
package worker

import (
	"context"
	"sync"
	"time"

	"classroom/internal/notifications/queue"
	"classroom/pkg/config"
	"classroom/pkg/model"
)

type JobDispatcher interface {
	Dispatch(ctx context.Context, bookingID string, kind model.NotificationKind) error
}

type Sweeper interface {
	Run(ctx context.Context, now time.Time) error
}

type Worker struct {
	cfg        *config.Config
	queue      queue.Queue
	dispatcher JobDispatcher
	sweeper    Sweeper
	now        func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func New(cfg *config.Config, q queue.Queue, dispatcher JobDispatcher, sweeper Sweeper) *Worker {
	return &Worker{
		cfg:        cfg,
		queue:      q,
		dispatcher: dispatcher,
		sweeper:    sweeper,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(2)
	go w.pollLoop(ctx)
	go w.sweepLoop(ctx)
	w.cfg.Log.Info("notification worker started",
		"poll_interval", w.cfg.QueuePollInterval,
		"sweep_interval", w.cfg.SweepInterval,
	)
}

func (w *Worker) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.cfg.Log.Info("notification worker stopped")
}

func (w *Worker) pollLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.QueuePollInterval)
	defer ticker.Stop()

	// drain anything already due before the first tick
	w.processDue(ctx)

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processDue(ctx)
		}
	}
}

func (w *Worker) sweepLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	// sweep immediately so completions missed across a restart are not
	// delayed by a full interval
	w.runSweep(ctx)

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

func (w *Worker) runSweep(ctx context.Context) {
	if err := w.sweeper.Run(ctx, w.now()); err != nil {
		w.cfg.Log.Error("completion sweep failed", "error", err)
	}
}

// processDue claims and dispatches every due job. Failed dispatches are
// released back to the queue with their attempt counted.
func (w *Worker) processDue(ctx context.Context) {
	jobs, err := w.queue.ClaimDue(ctx, w.now(), w.cfg.QueueClaimLimit)
	if err != nil {
		w.cfg.Log.Error("failed to claim due notifications", "error", err)
	}

	for _, job := range jobs {
		if err := w.dispatcher.Dispatch(ctx, job.BookingID, job.Kind); err != nil {
			w.cfg.Log.Warn("notification dispatch failed, releasing job",
				"job_id", job.ID,
				"booking_id", job.BookingID,
				"kind", job.Kind,
				"attempts", job.Attempts,
				"error", err,
			)
			if releaseErr := w.queue.Release(ctx, job.ID); releaseErr != nil {
				w.cfg.Log.Error("failed to release notification job", "job_id", job.ID, "error", releaseErr)
			}
			continue
		}

		if err := w.queue.MarkSent(ctx, job.ID); err != nil {
			w.cfg.Log.Error("failed to mark notification sent", "job_id", job.ID, "error", err)
		}
	}
}
