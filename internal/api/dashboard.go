package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// dashboardData feeds the dashboard template.
type dashboardData struct {
	Title     string
	TrendDays int
}

// Dashboard handles GET / and serves the dashboard page. The page loads
// its data from the JSON API.
func (h *Handler) Dashboard(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	data := dashboardData{
		Title:     "Monitoring Berita Kabupaten Jombang",
		TrendDays: h.trendDays,
	}
	if err := dashboardTmpl.Execute(c.Writer, data); err != nil {
		h.log.Error("dashboard render failed", "error", err)
	}
}
