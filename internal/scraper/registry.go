package scraper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diskominfo-jombang/newsmon/internal/logger"
)

// ErrNoSources indicates no sources were found in the registry file.
var ErrNoSources = errors.New("no sources found in registry")

// registryFile is the on-disk shape of sources.yml.
type registryFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

// RegistryOptions configures scraper construction.
type RegistryOptions struct {
	// UserAgent identifies the scraper on outbound requests.
	UserAgent string
	// RequestTimeout bounds each scraper fetch.
	RequestTimeout time.Duration
	// SourceLimit is the default per-source candidate cap.
	SourceLimit int
}

// DefaultSources is the built-in registry: the Jombang portals monitored
// since the first deployment. The WordPress portals expose feeds and are
// scraped via RSS; the rest are scraped from their listing pages.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Name: "beritajombang.com",
			Type: TypeRSS,
			URL:  "https://beritajombang.com/feed/",
		},
		{
			Name: "kabarjombang.com",
			Type: TypeRSS,
			URL:  "https://kabarjombang.com/feed/",
		},
		{
			Name:         "jombangkab.go.id",
			Type:         TypeHTML,
			URL:          "https://www.jombangkab.go.id/berita",
			ItemSelector: `a[href*="/berita/"]`,
		},
		{
			Name:              "detik.com",
			Type:              TypeHTML,
			URL:               "https://www.detik.com/search/searchall?query=Jombang",
			ItemSelector:      "article.search-result a",
			ContainerSelector: "article",
		},
		{
			Name:         "tribunjatim",
			Type:         TypeHTML,
			URL:          "https://jatim.tribunnews.com/tag/jombang",
			ItemSelector: "h3.post-title a, h2.post-title a",
		},
		{
			Name:              "wartajombang",
			Type:              TypeHTML,
			URL:               "https://wartajombang.com/",
			ItemSelector:      "h2.entry-title a, .post-title a",
			ContainerSelector: "article",
		},
	}
}

// LoadSources reads the source registry from path. When the file does not
// exist the built-in registry is returned, so a fresh checkout works
// without configuration.
func LoadSources(path string, log logger.Interface) ([]SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("Source registry file not found, using built-in sources", "path", path)
			return DefaultSources(), nil
		}
		return nil, fmt.Errorf("read source registry: %w", err)
	}

	var file registryFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("parse source registry: %w", unmarshalErr)
	}
	if len(file.Sources) == 0 {
		return nil, ErrNoSources
	}

	for i := range file.Sources {
		if validateErr := file.Sources[i].Validate(); validateErr != nil {
			return nil, fmt.Errorf("source registry: %w", validateErr)
		}
	}

	return file.Sources, nil
}

// Build constructs one scraper per source config, preserving registry
// order. All scrapers share one fetcher.
func Build(configs []SourceConfig, opts RegistryOptions) ([]Scraper, error) {
	fetcher := NewFetcher(opts.UserAgent, opts.RequestTimeout)

	scrapers := make([]Scraper, 0, len(configs))
	for i := range configs {
		cfg := configs[i]
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		switch cfg.Type {
		case TypeRSS:
			scrapers = append(scrapers, NewRSSScraper(cfg, fetcher, opts.SourceLimit))
		case TypeHTML:
			scrapers = append(scrapers, NewHTMLScraper(cfg, fetcher, opts.SourceLimit))
		}
	}

	return scrapers, nil
}
