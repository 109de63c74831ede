package api

import (
	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ArticlesResponse wraps a list of articles.
type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
	Total    int              `json:"total"`
}

// TrendResponse carries per-day article counts in chronological order.
type TrendResponse struct {
	Days  int                 `json:"days"`
	Trend []domain.DailyCount `json:"trend"`
}

// KeywordsResponse carries keyword frequencies, most frequent first.
type KeywordsResponse struct {
	Days     int                   `json:"days"`
	Keywords []domain.KeywordCount `json:"keywords"`
}

// WordCloudEntry is one word of the word cloud. Weight is the raw
// frequency; the client scales it for display.
type WordCloudEntry struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// WordCloudResponse carries the word cloud data set.
type WordCloudResponse struct {
	Words []WordCloudEntry `json:"words"`
}

// StatusResponse reports crawl state for the dashboard.
type StatusResponse struct {
	Running   bool                  `json:"running"`
	LastCrawl *domain.CrawlSummary  `json:"last_crawl,omitempty"`
	Sources   []domain.SourceHealth `json:"sources"`
}

// CrawlResponse acknowledges a manual crawl trigger.
type CrawlResponse struct {
	Status  string `json:"status"`
	Trigger string `json:"trigger"`
}

// toWordCloud converts keyword counts into word cloud entries.
func toWordCloud(keywords []domain.KeywordCount) []WordCloudEntry {
	words := make([]WordCloudEntry, 0, len(keywords))
	for _, kw := range keywords {
		words = append(words, WordCloudEntry{Text: kw.Keyword, Weight: kw.Count})
	}
	return words
}
