// Package scraper extracts candidate articles from monitored news portals.
// Each source gets one Scraper implementation: RSS feeds are parsed with
// gofeed, HTML listing pages with goquery CSS selectors. A scraper performs
// at most one outbound request per invocation.
package scraper

import (
	"context"
	"fmt"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// Scraper fetches a source's current content and parses it into candidate
// articles. Implementations perform at most one outbound request per call
// and must honor ctx cancellation.
type Scraper interface {
	// Source returns the stable key identifying the monitored portal.
	Source() string
	// Scrape returns the candidates parsed from the source's current
	// content. A fetch or parse failure returns an error and no candidates;
	// the caller decides how to record it.
	Scrape(ctx context.Context) ([]domain.Candidate, error)
}

// Source type values accepted in the registry.
const (
	TypeRSS  = "rss"
	TypeHTML = "html"
)

// SourceConfig describes one monitored portal in the source registry.
type SourceConfig struct {
	// Name is the stable source key stored with every article.
	Name string `yaml:"name" mapstructure:"name"`
	// Type selects the scraper variant: "rss" or "html".
	Type string `yaml:"type" mapstructure:"type"`
	// URL is the feed URL (rss) or listing page URL (html).
	URL string `yaml:"url" mapstructure:"url"`
	// ItemSelector is the CSS selector matching article anchors on a
	// listing page. Required for html sources.
	ItemSelector string `yaml:"item_selector" mapstructure:"item_selector"`
	// ContainerSelector, when set, is the closest ancestor of each anchor
	// inspected for a <time> element carrying the publish date.
	ContainerSelector string `yaml:"container_selector" mapstructure:"container_selector"`
	// Limit caps the candidates taken from this source. Zero means the
	// registry default.
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// Validate checks that the source configuration is usable.
func (c *SourceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if c.URL == "" {
		return fmt.Errorf("source %q: url is required", c.Name)
	}
	switch c.Type {
	case TypeRSS:
	case TypeHTML:
		if c.ItemSelector == "" {
			return fmt.Errorf("source %q: item_selector is required for html sources", c.Name)
		}
	default:
		return fmt.Errorf("source %q: unknown type %q", c.Name, c.Type)
	}
	return nil
}
