// Package crawler implements the crawl orchestrator: one pass over every
// registered scraper, merged into the article store with deduplication.
package crawler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
	"github.com/diskominfo-jombang/newsmon/internal/logger"
	"github.com/diskominfo-jombang/newsmon/internal/metrics"
	"github.com/diskominfo-jombang/newsmon/internal/scraper"
)

// ErrCrawlInProgress is returned when a trigger arrives while a crawl is
// already running. The trigger is dropped, not queued.
var ErrCrawlInProgress = errors.New("a crawl is already in progress")

// ArticleWriter is the write side of the article store used by the
// orchestrator.
type ArticleWriter interface {
	Upsert(ctx context.Context, article *domain.Article) (created bool, err error)
}

// Crawler runs full crawl passes. At most one crawl executes at any time;
// its only side effect is article store mutation.
type Crawler struct {
	scrapers []scraper.Scraper
	store    ArticleWriter
	log      logger.Interface
	metrics  *metrics.Metrics
	now      func() time.Time

	running atomic.Bool

	lastMu sync.RWMutex
	last   *domain.CrawlSummary
}

// New creates a crawl orchestrator over the given scrapers and store.
func New(scrapers []scraper.Scraper, store ArticleWriter, log logger.Interface, m *metrics.Metrics) *Crawler {
	return &Crawler{
		scrapers: scrapers,
		store:    store,
		log:      log.WithComponent("crawler"),
		metrics:  m,
		now:      time.Now,
	}
}

// WithClock overrides the orchestrator clock. Used in tests.
func (c *Crawler) WithClock(now func() time.Time) *Crawler {
	c.now = now
	return c
}

// Run performs one full crawl: every scraper is invoked exactly once, all
// candidates are merged into the store, and a summary is produced. Scraper
// and per-row store errors are contained and counted; Run only fails when
// another crawl holds the slot.
func (c *Crawler) Run(ctx context.Context, trigger string) (*domain.CrawlSummary, error) {
	if !c.begin() {
		return nil, ErrCrawlInProgress
	}
	defer c.end()

	return c.run(ctx, trigger), nil
}

// RunAsync claims the crawl slot and, when successful, performs the crawl
// in the background. The decision to accept or drop the trigger is made
// synchronously so callers can report it immediately.
func (c *Crawler) RunAsync(ctx context.Context, trigger string) error {
	if !c.begin() {
		return ErrCrawlInProgress
	}

	go func() {
		defer c.end()
		c.run(ctx, trigger)
	}()
	return nil
}

// begin claims the single crawl slot.
func (c *Crawler) begin() bool {
	if !c.running.CompareAndSwap(false, true) {
		c.metrics.CrawlsSkipped.Inc()
		return false
	}
	return true
}

// end releases the crawl slot.
func (c *Crawler) end() {
	c.running.Store(false)
}

// run executes a crawl pass. The caller must hold the crawl slot.
func (c *Crawler) run(ctx context.Context, trigger string) *domain.CrawlSummary {
	crawlID := uuid.NewString()
	startedAt := c.now()
	log := c.log.With("crawl_id", crawlID, "trigger", trigger)
	log.Info("Starting crawl", "sources", len(c.scrapers))

	summary := &domain.CrawlSummary{
		CrawlID:   crawlID,
		Trigger:   trigger,
		StartedAt: startedAt,
		Sources:   make([]domain.SourceResult, 0, len(c.scrapers)),
	}

	for _, s := range c.scrapers {
		result := c.crawlSource(ctx, log, s)

		summary.NewArticles += result.New
		summary.Updated += result.Updated
		summary.StoreErrors += result.StoreErrors
		if result.Failed {
			summary.FailedSources++
		}
		summary.Sources = append(summary.Sources, result)
	}

	summary.Duration = c.now().Sub(startedAt)

	c.metrics.CrawlsTotal.WithLabelValues(trigger).Inc()
	c.metrics.CrawlDuration.Observe(summary.Duration.Seconds())

	c.lastMu.Lock()
	c.last = summary
	c.lastMu.Unlock()

	log.Info("Crawl finished",
		"new_articles", summary.NewArticles,
		"updated", summary.Updated,
		"failed_sources", summary.FailedSources,
		"duration", summary.Duration)

	return summary
}

// crawlSource invokes one scraper and merges its candidates. Failures are
// recorded on the result, never raised.
func (c *Crawler) crawlSource(ctx context.Context, log logger.Interface, s scraper.Scraper) domain.SourceResult {
	source := s.Source()
	start := c.now()
	result := domain.SourceResult{Source: source}

	candidates, err := s.Scrape(ctx)
	if err != nil {
		log.Warn("Source failed", "source", source, "error", err)
		c.metrics.SourceFailures.WithLabelValues(source).Inc()
		result.Failed = true
		result.Duration = c.now().Sub(start)
		return result
	}

	result.Candidates = len(candidates)

	crawledAt := c.now()
	for i := range candidates {
		created, upsertErr := c.storeCandidate(ctx, &candidates[i], crawledAt)
		if upsertErr != nil {
			log.Error("Store write failed", "source", source, "url", candidates[i].URL, "error", upsertErr)
			result.StoreErrors++
			continue
		}
		if created {
			result.New++
			c.metrics.ArticlesInserted.WithLabelValues(source).Inc()
		} else {
			result.Updated++
			c.metrics.ArticlesUpdated.WithLabelValues(source).Inc()
		}
	}

	result.Duration = c.now().Sub(start)
	log.Debug("Source crawled",
		"source", source,
		"candidates", result.Candidates,
		"new", result.New,
		"updated", result.Updated)

	return result
}

// storeCandidate categorizes a candidate and upserts it. Candidates
// without a publish date get the crawl time.
func (c *Crawler) storeCandidate(ctx context.Context, candidate *domain.Candidate, crawledAt time.Time) (bool, error) {
	published := candidate.PublishedAt
	if published.IsZero() {
		published = crawledAt
	}

	article := &domain.Article{
		Source:      candidate.Source,
		URL:         candidate.URL,
		Title:       candidate.Title,
		Category:    Categorize(candidate.Title),
		PublishedAt: published,
		CrawledAt:   crawledAt,
	}
	return c.store.Upsert(ctx, article)
}

// LastSummary returns the most recent crawl summary, or nil when no crawl
// has completed since the process started.
func (c *Crawler) LastSummary() *domain.CrawlSummary {
	c.lastMu.RLock()
	defer c.lastMu.RUnlock()
	return c.last
}

// Running reports whether a crawl is currently executing.
func (c *Crawler) Running() bool {
	return c.running.Load()
}
