package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the pricing audit periodically.
type Scheduler struct {
	cron         *cron.Cron
	engine       *Engine
	log          *slog.Logger
	runTimeout   time.Duration
	auditEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that audits pricing every auditInterval.
// Each run is bounded by runTimeout; zero means no bound.
func NewScheduler(
	eng *Engine,
	auditInterval time.Duration,
	runTimeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:       c,
		engine:     eng,
		log:        log,
		runTimeout: runTimeout,
	}

	id, err := c.AddFunc("@every "+auditInterval.String(), s.runAudit)
	if err != nil {
		return nil, err
	}
	s.auditEntryID = id

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

// NextAudit returns when the audit runs next. It is zero until Start.
func (s *Scheduler) NextAudit() time.Time {
	return s.cron.Entry(s.auditEntryID).Next
}

func (s *Scheduler) runAudit() {
	ctx := context.Background()
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	s.log.Info("scheduled pricing audit starting")
	if _, err := s.engine.RunPricingAudit(ctx); err != nil {
		s.log.Error("scheduled pricing audit failed", "error", err)
	}
}
