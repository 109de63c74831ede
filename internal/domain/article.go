// Package domain defines the core types shared across the application.
package domain

import "time"

// Article is a stored news article. The (Source, URL) pair is unique;
// re-crawls update the mutable fields of an existing row instead of
// creating a new one.
type Article struct {
	ID          int64     `db:"id" json:"id"`
	Source      string    `db:"source" json:"source"`
	URL         string    `db:"url" json:"url"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CrawledAt   time.Time `db:"crawled_at" json:"crawled_at"`
}

// Candidate is an article parsed from a source's current content but not
// yet merged into the store. PublishedAt is zero when the source did not
// expose a publish date; the orchestrator falls back to the crawl time.
type Candidate struct {
	Source      string
	URL         string
	Title       string
	PublishedAt time.Time
}

// DailyCount is the number of articles published on one calendar day.
type DailyCount struct {
	Day   string `db:"day" json:"day"`
	Count int    `db:"count" json:"count"`
}

// KeywordCount is one token with its frequency across stored titles.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// SourceHealth summarizes one source's presence in the store, used by the
// dashboard to flag sources that have stopped yielding articles.
type SourceHealth struct {
	Source       string    `db:"source" json:"source"`
	ArticleCount int       `db:"article_count" json:"article_count"`
	LastCrawled  time.Time `db:"last_crawled" json:"last_crawled"`
}
