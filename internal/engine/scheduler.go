package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the periodic cache warm task.
type Scheduler struct {
	cron   *cron.Cron
	warmer *Warmer
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that warms the cache on an interval.
func NewScheduler(w *Warmer, warmInterval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		warmer: w,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+warmInterval.String(), s.runWarm); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runWarm() {
	ctx := context.Background()
	s.log.Info("scheduled cache warm starting")
	if err := s.warmer.WarmAll(ctx); err != nil {
		s.log.Error("scheduled cache warm failed", "error", err)
	}
}
