package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes on router. metricsHandler serves the
// Prometheus scrape endpoint and may be nil to disable it.
func SetupRoutes(router *gin.Engine, handler *Handler, metricsHandler http.Handler) {
	router.GET("/", handler.Dashboard)
	router.GET("/healthz", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/articles", handler.ListArticles) // GET /api/articles
		api.GET("/trend", handler.Trend)           // GET /api/trend
		api.GET("/keywords", handler.Keywords)     // GET /api/keywords
		api.GET("/wordcloud", handler.WordCloud)   // GET /api/wordcloud
		api.GET("/status", handler.Status)         // GET /api/status
		api.POST("/crawl", handler.TriggerCrawl)   // POST /api/crawl
	}

	router.GET("/export/pdf", handler.ExportPDF)

	// Aliases kept for dashboards bookmarked against the old paths.
	router.GET("/crawl-now", handler.TriggerCrawl)
	router.GET("/export-pdf", handler.ExportPDF)

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
