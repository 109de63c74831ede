package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// HTMLScraper parses a portal's listing page into candidates using CSS
// selectors. Only the listing page itself is fetched; publish dates come
// from <time> elements near each anchor when the markup exposes them.
type HTMLScraper struct {
	cfg     SourceConfig
	fetcher *Fetcher
	limit   int
}

// NewHTMLScraper creates a scraper for the listing page described by cfg.
func NewHTMLScraper(cfg SourceConfig, fetcher *Fetcher, defaultLimit int) *HTMLScraper {
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return &HTMLScraper{cfg: cfg, fetcher: fetcher, limit: limit}
}

// Source returns the source key.
func (s *HTMLScraper) Source() string { return s.cfg.Name }

// Scrape fetches the listing page once and extracts article anchors
// matching the configured item selector. Relative links are resolved
// against the page URL; duplicate links within one page are dropped.
func (s *HTMLScraper) Scrape(ctx context.Context) ([]domain.Candidate, error) {
	body, err := s.fetcher.Fetch(ctx, s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", s.cfg.Name, err)
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if parseErr != nil {
		return nil, fmt.Errorf("source %s: parse html: %w", s.cfg.Name, parseErr)
	}

	base, baseErr := url.Parse(s.cfg.URL)
	if baseErr != nil {
		return nil, fmt.Errorf("source %s: parse base url: %w", s.cfg.Name, baseErr)
	}

	candidates := make([]domain.Candidate, 0, s.limit)
	seen := make(map[string]struct{})

	doc.Find(s.cfg.ItemSelector).EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		if len(candidates) >= s.limit {
			return false
		}

		href, exists := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Text())
		if !exists || href == "" || title == "" {
			return true
		}

		link := resolveLink(base, href)
		if link == "" {
			return true
		}
		if _, dup := seen[link]; dup {
			return true
		}
		seen[link] = struct{}{}

		candidate := domain.Candidate{
			Source: s.cfg.Name,
			URL:    link,
			Title:  title,
		}
		if published, ok := s.extractPublished(anchor); ok {
			candidate.PublishedAt = published
		}

		candidates = append(candidates, candidate)
		return true
	})

	return candidates, nil
}

// extractPublished looks for a <time> element in the anchor's configured
// container and parses its datetime attribute or text.
func (s *HTMLScraper) extractPublished(anchor *goquery.Selection) (published time.Time, ok bool) {
	container := anchor
	if s.cfg.ContainerSelector != "" {
		container = anchor.Closest(s.cfg.ContainerSelector)
	}
	if container.Length() == 0 {
		return published, false
	}

	timeTag := container.Find("time").First()
	if timeTag.Length() == 0 {
		return published, false
	}

	if datetime, exists := timeTag.Attr("datetime"); exists {
		if t, parsed := ParsePublished(datetime); parsed {
			return t, true
		}
	}
	return ParsePublished(timeTag.Text())
}

// resolveLink resolves href against the page URL, keeping only http(s)
// results.
func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
