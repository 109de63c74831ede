// Package metrics exposes Prometheus instrumentation for the crawler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors updated by the crawl orchestrator.
type Metrics struct {
	registry *prometheus.Registry

	// CrawlsTotal counts completed crawls by trigger kind.
	CrawlsTotal *prometheus.CounterVec
	// CrawlsSkipped counts triggers dropped because a crawl was running.
	CrawlsSkipped prometheus.Counter
	// ArticlesInserted counts new articles stored, by source.
	ArticlesInserted *prometheus.CounterVec
	// ArticlesUpdated counts re-crawl updates of existing articles.
	ArticlesUpdated *prometheus.CounterVec
	// SourceFailures counts scraper failures, by source.
	SourceFailures *prometheus.CounterVec
	// CrawlDuration observes full crawl durations in seconds.
	CrawlDuration prometheus.Histogram
}

// New creates the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		CrawlsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmon_crawls_total",
			Help: "Completed crawls by trigger kind.",
		}, []string{"trigger"}),
		CrawlsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsmon_crawls_skipped_total",
			Help: "Crawl triggers dropped because a crawl was already running.",
		}),
		ArticlesInserted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmon_articles_inserted_total",
			Help: "New articles stored, by source.",
		}, []string{"source"}),
		ArticlesUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmon_articles_updated_total",
			Help: "Existing articles refreshed on re-crawl, by source.",
		}, []string{"source"}),
		SourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsmon_source_failures_total",
			Help: "Scraper fetch or parse failures, by source.",
		}, []string{"source"}),
		CrawlDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsmon_crawl_duration_seconds",
			Help:    "Duration of full crawl passes.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
