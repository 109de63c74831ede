package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// httpPrefix is the scheme prefix used to decide if a GUID is a usable URL.
const httpPrefix = "http"

// RSSScraper parses one RSS or Atom feed into candidates.
type RSSScraper struct {
	cfg     SourceConfig
	fetcher *Fetcher
	limit   int
}

// NewRSSScraper creates a scraper for the feed described by cfg.
func NewRSSScraper(cfg SourceConfig, fetcher *Fetcher, defaultLimit int) *RSSScraper {
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return &RSSScraper{cfg: cfg, fetcher: fetcher, limit: limit}
}

// Source returns the source key.
func (s *RSSScraper) Source() string { return s.cfg.Name }

// Scrape fetches the feed once and parses its entries. Entries without a
// usable link are skipped.
func (s *RSSScraper) Scrape(ctx context.Context) ([]domain.Candidate, error) {
	body, err := s.fetcher.Fetch(ctx, s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", s.cfg.Name, err)
	}

	parsed, parseErr := gofeed.NewParser().ParseString(string(body))
	if parseErr != nil {
		return nil, fmt.Errorf("source %s: parse feed: %w", s.cfg.Name, parseErr)
	}

	candidates := make([]domain.Candidate, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if len(candidates) >= s.limit {
			break
		}

		link := extractLink(entry)
		title := strings.TrimSpace(entry.Title)
		if link == "" || title == "" {
			continue
		}

		candidate := domain.Candidate{
			Source: s.cfg.Name,
			URL:    link,
			Title:  title,
		}
		if entry.PublishedParsed != nil {
			candidate.PublishedAt = *entry.PublishedParsed
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// extractLink returns the best available URL from a feed entry, preferring
// the explicit link and falling back to a GUID that looks like a URL.
func extractLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if strings.HasPrefix(entry.GUID, httpPrefix) {
		return entry.GUID
	}
	return ""
}
