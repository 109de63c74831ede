// Package api exposes the dashboard and its JSON API over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diskominfo-jombang/newsmon/internal/crawler"
	"github.com/diskominfo-jombang/newsmon/internal/domain"
	"github.com/diskominfo-jombang/newsmon/internal/logger"
	"github.com/diskominfo-jombang/newsmon/internal/pdf"
	"github.com/diskominfo-jombang/newsmon/internal/scheduler"
)

const pdfFilename = "laporan-berita-jombang.pdf"

// Reporter is the read-side query surface the handlers consume.
type Reporter interface {
	Trend(ctx context.Context, days int) ([]domain.DailyCount, error)
	TopKeywords(ctx context.Context, days int) ([]domain.KeywordCount, error)
	RecentArticles(ctx context.Context, limit int) ([]domain.Article, error)
	ArticlesSince(ctx context.Context, days, limit int) ([]domain.Article, error)
	SourceHealth(ctx context.Context) ([]domain.SourceHealth, error)
}

// CrawlControl triggers crawls and reports their state.
type CrawlControl interface {
	TriggerNow() error
	Running() bool
	LastSummary() *domain.CrawlSummary
}

// Handler handles HTTP requests for the dashboard API.
type Handler struct {
	reports     Reporter
	crawls      CrawlControl
	log         logger.Interface
	now         func() time.Time
	trendDays   int
	recentLimit int
}

// NewHandler creates an API handler.
func NewHandler(
	reports Reporter,
	crawls CrawlControl,
	log logger.Interface,
	trendDays, recentLimit int,
) *Handler {
	return &Handler{
		reports:     reports,
		crawls:      crawls,
		log:         log,
		now:         time.Now,
		trendDays:   trendDays,
		recentLimit: recentLimit,
	}
}

// WithClock overrides the handler clock. Used in tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// intQuery reads an integer query parameter, falling back to def when the
// parameter is absent. Non-numeric or non-positive values are an error.
func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive integer", name)
	}
	return v, nil
}

// ListArticles handles GET /api/articles.
func (h *Handler) ListArticles(c *gin.Context) {
	days, err := intQuery(c, "days", h.trendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	limit, err := intQuery(c, "limit", h.recentLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	articles, err := h.reports.ArticlesSince(c.Request.Context(), days, limit)
	if err != nil {
		h.log.Error("list articles failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load articles"})
		return
	}
	c.JSON(http.StatusOK, ArticlesResponse{Articles: articles, Total: len(articles)})
}

// Trend handles GET /api/trend.
func (h *Handler) Trend(c *gin.Context) {
	days, err := intQuery(c, "days", h.trendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	trend, err := h.reports.Trend(c.Request.Context(), days)
	if err != nil {
		h.log.Error("trend report failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load trend"})
		return
	}
	c.JSON(http.StatusOK, TrendResponse{Days: days, Trend: trend})
}

// Keywords handles GET /api/keywords.
func (h *Handler) Keywords(c *gin.Context) {
	days, err := intQuery(c, "days", h.trendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	keywords, err := h.reports.TopKeywords(c.Request.Context(), days)
	if err != nil {
		h.log.Error("keyword report failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load keywords"})
		return
	}
	c.JSON(http.StatusOK, KeywordsResponse{Days: days, Keywords: keywords})
}

// WordCloud handles GET /api/wordcloud. It serves the same frequencies as
// Keywords, shaped for the wordcloud2 client library.
func (h *Handler) WordCloud(c *gin.Context) {
	days, err := intQuery(c, "days", h.trendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	keywords, err := h.reports.TopKeywords(c.Request.Context(), days)
	if err != nil {
		h.log.Error("word cloud report failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load word cloud"})
		return
	}
	c.JSON(http.StatusOK, WordCloudResponse{Words: toWordCloud(keywords)})
}

// Status handles GET /api/status.
func (h *Handler) Status(c *gin.Context) {
	sources, err := h.reports.SourceHealth(c.Request.Context())
	if err != nil {
		h.log.Error("source health failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load status"})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Running:   h.crawls.Running(),
		LastCrawl: h.crawls.LastSummary(),
		Sources:   sources,
	})
}

// TriggerCrawl handles POST /api/crawl and the legacy GET /crawl-now
// alias. The crawl runs in the background; the response only acknowledges
// that it was accepted.
func (h *Handler) TriggerCrawl(c *gin.Context) {
	err := h.crawls.TriggerNow()
	switch {
	case errors.Is(err, crawler.ErrCrawlInProgress):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "a crawl is already running"})
	case errors.Is(err, scheduler.ErrNotStarted):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "scheduler is not running"})
	case err != nil:
		h.log.Error("manual crawl trigger failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start crawl"})
	default:
		h.log.Info("manual crawl accepted")
		c.JSON(http.StatusAccepted, CrawlResponse{Status: "accepted", Trigger: domain.TriggerManual})
	}
}

// ExportPDF handles GET /export/pdf and the legacy GET /export-pdf alias.
func (h *Handler) ExportPDF(c *gin.Context) {
	days, err := intQuery(c, "days", h.trendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	trend, err := h.reports.Trend(ctx, days)
	if err != nil {
		h.exportError(c, err)
		return
	}
	keywords, err := h.reports.TopKeywords(ctx, days)
	if err != nil {
		h.exportError(c, err)
		return
	}
	recent, err := h.reports.RecentArticles(ctx, h.recentLimit)
	if err != nil {
		h.exportError(c, err)
		return
	}

	out, err := pdf.Render(&pdf.Data{
		GeneratedAt: h.now(),
		Days:        days,
		Trend:       trend,
		Keywords:    keywords,
		Recent:      recent,
	})
	if err != nil {
		h.exportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename))
	c.Data(http.StatusOK, "application/pdf", out)
}

func (h *Handler) exportError(c *gin.Context, err error) {
	h.log.Error("pdf export failed", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to export report"})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
