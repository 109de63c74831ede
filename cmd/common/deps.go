// Package common holds the dependency wiring shared by all commands.
package common

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diskominfo-jombang/newsmon/internal/config"
	"github.com/diskominfo-jombang/newsmon/internal/crawler"
	"github.com/diskominfo-jombang/newsmon/internal/database"
	"github.com/diskominfo-jombang/newsmon/internal/logger"
	"github.com/diskominfo-jombang/newsmon/internal/metrics"
	"github.com/diskominfo-jombang/newsmon/internal/report"
	"github.com/diskominfo-jombang/newsmon/internal/scraper"
)

// Deps holds the dependencies every command starts from.
type Deps struct {
	Config *config.Config
	Logger logger.Interface
}

// NewDeps loads the configuration and creates the logger. debug forces
// debug-level development logging regardless of configuration.
func NewDeps(debug bool) (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := logger.Config{
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
		Development: cfg.Logger.Development,
	}
	if debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}

	log, err := logger.New(&logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &Deps{Config: cfg, Logger: log}, nil
}

// OpenStore opens the article database and wraps it in a repository. The
// caller owns the returned DB handle and must close it.
func (d *Deps) OpenStore(ctx context.Context) (*sqlx.DB, *database.ArticleRepository, error) {
	db, err := database.Open(ctx, d.Config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, database.NewArticleRepository(db), nil
}

// LoadScrapers reads the source registry and builds one scraper per
// source.
func (d *Deps) LoadScrapers() ([]scraper.Scraper, error) {
	configs, err := scraper.LoadSources(d.Config.Crawler.SourceFile, d.Logger)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	scrapers, err := scraper.Build(configs, scraper.RegistryOptions{
		UserAgent:      d.Config.Crawler.UserAgent,
		RequestTimeout: d.Config.Crawler.RequestTimeout,
		SourceLimit:    d.Config.Crawler.SourceLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("build scrapers: %w", err)
	}
	return scrapers, nil
}

// BuildCrawler assembles the crawler over repo with fresh metrics.
func (d *Deps) BuildCrawler(repo *database.ArticleRepository) (*crawler.Crawler, *metrics.Metrics, error) {
	scrapers, err := d.LoadScrapers()
	if err != nil {
		return nil, nil, err
	}
	m := metrics.New()
	return crawler.New(scrapers, repo, d.Logger, m), m, nil
}

// BuildReports assembles the reporting service over repo.
func (d *Deps) BuildReports(repo *database.ArticleRepository) *report.Service {
	extractor := report.NewKeywordExtractor(
		d.Config.Keywords.MinTokenLength,
		d.Config.Keywords.ExtraStopwords,
	)
	return report.NewService(repo, extractor, d.Config.Keywords.TopN)
}
