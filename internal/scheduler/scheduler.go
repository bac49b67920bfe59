// Package scheduler wakes once per UTC day and triggers a dispatch run.
package scheduler

import (
	"context"
	"time"

	"github.com/glebk/birthday-bot/internal/domain"
	"go.uber.org/zap"
)

// Dispatcher runs one notification pass for the date of now
type Dispatcher interface {
	Run(ctx context.Context, now time.Time) (domain.RunReport, error)
}

// Scheduler sleeps until the next UTC midnight, dispatches, and repeats
type Scheduler struct {
	dispatcher Dispatcher
	log        *zap.Logger
	now        func() time.Time
	after      func(time.Duration) <-chan time.Time
}

// New creates a Scheduler driven by the wall clock
func New(dispatcher Dispatcher, log *zap.Logger) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
		after:      time.After,
	}
}

// NextDelay returns the time left until the first UTC midnight strictly
// after now. At exactly midnight that is a full day.
func NextDelay(now time.Time) time.Duration {
	return nextMidnight(now).Sub(now)
}

func nextMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// Run blocks until ctx is cancelled. A dispatch that has started is allowed
// to finish even if ctx is cancelled meanwhile.
//
// Each run is dated by the midnight the loop slept toward, not by the wall
// clock at wake-up, and the next midnight is always after the last one
// dispatched. A wall clock stepped back during the sleep cannot make the
// same day run twice.
func (s *Scheduler) Run(ctx context.Context) error {
	var last time.Time
	for {
		// Round(0) drops the monotonic reading so dates compare by wall clock.
		now := s.now().Round(0).UTC()
		from := now
		if from.Before(last) {
			from = last
		}
		boundary := nextMidnight(from)
		delay := boundary.Sub(now)
		s.log.Info("Sleeping until next dispatch",
			zap.Duration("delay", delay),
			zap.Time("boundary", boundary),
		)

		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return ctx.Err()
		case <-s.after(delay):
		}

		at := boundary
		if woke := s.now().Round(0).UTC(); woke.After(at) {
			at = woke
		}
		s.dispatch(context.WithoutCancel(ctx), at)
		last = boundary
	}
}

func (s *Scheduler) dispatch(ctx context.Context, at time.Time) {
	report, err := s.dispatcher.Run(ctx, at)

	fields := []zap.Field{
		zap.String("run_id", report.RunID),
		zap.Time("date", report.Date),
		zap.Int("total", report.Total),
		zap.Int("sent", report.Sent),
		zap.Int("pinned", report.Pinned),
		zap.Int("pin_denied", report.PinDenied),
		zap.Int("groups_removed", report.GroupsRemoved),
		zap.Int("records_removed", report.RecordsRemoved),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	}
	if err != nil {
		s.log.Error("Dispatch run failed", append(fields, zap.Error(err))...)
		return
	}
	s.log.Info("Dispatch run finished", fields...)
}
