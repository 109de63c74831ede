package domain

import "time"

// SourceResult records the outcome of one scraper invocation within a crawl.
type SourceResult struct {
	Source      string        `json:"source"`
	Candidates  int           `json:"candidates"`
	New         int           `json:"new"`
	Updated     int           `json:"updated"`
	StoreErrors int           `json:"store_errors"`
	Failed      bool          `json:"failed"`
	Duration    time.Duration `json:"duration"`
}

// CrawlSummary is the outcome of one full crawl pass. The orchestrator
// always produces one, even when every source fails.
type CrawlSummary struct {
	CrawlID       string         `json:"crawl_id"`
	Trigger       string         `json:"trigger"`
	StartedAt     time.Time      `json:"started_at"`
	Duration      time.Duration  `json:"duration"`
	NewArticles   int            `json:"new_articles"`
	Updated       int            `json:"updated"`
	FailedSources int            `json:"failed_sources"`
	StoreErrors   int            `json:"store_errors"`
	Sources       []SourceResult `json:"sources"`
}

// Crawl trigger kinds recorded in CrawlSummary.Trigger.
const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)
