// Package pdf renders the dashboard summary into a downloadable PDF
// report.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// Layout constants in millimeters.
const (
	marginLeft  = 20
	lineHeight  = 6
	titleSize   = 14
	headingSize = 12
	bodySize    = 10
	maxURLWidth = 170
)

// Data is the snapshot rendered into one report.
type Data struct {
	GeneratedAt time.Time
	Days        int
	Trend       []domain.DailyCount
	Keywords    []domain.KeywordCount
	Recent      []domain.Article
}

// Render produces the PDF document for data. Rendering reads nothing from
// the store and mutates no state.
func Render(data *Data) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, 20, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleSize)
	doc.Cell(0, lineHeight+2, "Laporan Monitoring Berita Kabupaten Jombang")
	doc.Ln(lineHeight + 2)

	doc.SetFont("Helvetica", "", bodySize)
	doc.Cell(0, lineHeight, fmt.Sprintf("Rentang: %d hari terakhir - Dibuat: %s UTC",
		data.Days, data.GeneratedAt.UTC().Format("2006-01-02 15:04")))
	doc.Ln(lineHeight * 2)

	renderTrend(doc, data.Trend)
	renderKeywords(doc, data.Keywords)
	renderRecent(doc, data.Recent)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", headingSize)
	doc.Cell(0, lineHeight+1, text)
	doc.Ln(lineHeight + 2)
	doc.SetFont("Helvetica", "", bodySize)
}

func renderTrend(doc *fpdf.Fpdf, trend []domain.DailyCount) {
	heading(doc, "Tren Jumlah Berita per Hari")

	if len(trend) == 0 {
		doc.Cell(0, lineHeight, "Belum ada data.")
		doc.Ln(lineHeight * 2)
		return
	}

	for _, day := range trend {
		doc.Cell(0, lineHeight, fmt.Sprintf("%s : %d", day.Day, day.Count))
		doc.Ln(lineHeight)
	}
	doc.Ln(lineHeight)
}

func renderKeywords(doc *fpdf.Fpdf, keywords []domain.KeywordCount) {
	heading(doc, "Kata Kunci Teratas")

	if len(keywords) == 0 {
		doc.Cell(0, lineHeight, "Belum ada data.")
		doc.Ln(lineHeight * 2)
		return
	}

	for _, kw := range keywords {
		doc.Cell(0, lineHeight, fmt.Sprintf("%s : %d", kw.Keyword, kw.Count))
		doc.Ln(lineHeight)
	}
	doc.Ln(lineHeight)
}

func renderRecent(doc *fpdf.Fpdf, articles []domain.Article) {
	heading(doc, "Berita Terbaru")

	if len(articles) == 0 {
		doc.Cell(0, lineHeight, "Belum ada data.")
		doc.Ln(lineHeight * 2)
		return
	}

	for _, article := range articles {
		doc.MultiCell(maxURLWidth, lineHeight,
			fmt.Sprintf("[%s] %s (%s)", article.Source, article.Title,
				article.PublishedAt.UTC().Format("2006-01-02")),
			"", "L", false)
	}
}
