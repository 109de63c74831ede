// Package scheduler drives crawls on a fixed cadence and exposes the
// manual "crawl now" trigger. It is an owned component with an explicit
// Start/Stop lifecycle so tests can construct and tear it down
// deterministically.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
	"github.com/diskominfo-jombang/newsmon/internal/logger"
)

// ErrNotStarted is returned by TriggerNow before Start has run.
var ErrNotStarted = errors.New("scheduler is not started")

// CrawlRunner is the orchestrator surface the scheduler drives. Both
// methods drop the trigger when a crawl is already running.
type CrawlRunner interface {
	Run(ctx context.Context, trigger string) (*domain.CrawlSummary, error)
	RunAsync(ctx context.Context, trigger string) error
}

// Scheduler triggers the crawl orchestrator on a fixed interval for the
// lifetime of the process. Mutual exclusion is enforced by the runner, so
// a tick firing during a manual crawl (or vice versa) is skipped rather
// than interleaved.
type Scheduler struct {
	runner   CrawlRunner
	log      logger.Interface
	interval time.Duration

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler that triggers runner every interval.
func New(runner CrawlRunner, log logger.Interface, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   runner,
		log:      log.WithComponent("scheduler"),
		interval: interval,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// Start begins the periodic schedule. The first scheduled crawl fires one
// interval after Start.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.ctx != nil {
		return errors.New("scheduler already started")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(s.tick))
	s.cron.Start()

	s.log.Info("Scheduler started", "interval", s.interval.String())
	return nil
}

// Stop halts the schedule and waits for an in-flight scheduled crawl to
// finish.
func (s *Scheduler) Stop() {
	if s.ctx == nil {
		return
	}

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.cancel()

	s.log.Info("Scheduler stopped")
}

// tick runs one scheduled crawl. A tick that overlaps a running crawl is
// dropped by the runner.
func (s *Scheduler) tick() {
	summary, err := s.runner.Run(s.ctx, domain.TriggerScheduled)
	if err != nil {
		s.log.Warn("Scheduled crawl skipped", "error", err)
		return
	}

	s.log.Info("Scheduled crawl completed",
		"crawl_id", summary.CrawlID,
		"new_articles", summary.NewArticles,
		"failed_sources", summary.FailedSources)
}

// TriggerNow starts a manual crawl immediately, independent of the timer.
// The crawl runs in the background; the return value only reports whether
// the trigger was accepted, so callers never block on crawl completion.
func (s *Scheduler) TriggerNow() error {
	if s.ctx == nil {
		return ErrNotStarted
	}

	if err := s.runner.RunAsync(s.ctx, domain.TriggerManual); err != nil {
		return fmt.Errorf("manual crawl: %w", err)
	}

	s.log.Info("Manual crawl triggered")
	return nil
}
