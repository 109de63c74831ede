package report

import (
	"context"
	"fmt"
	"time"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// dayFormat is the calendar-day bucket format used throughout reporting.
const dayFormat = "2006-01-02"

// titlesQueryLimit caps how many titles feed one keyword extraction.
const titlesQueryLimit = 1000

// ArticleReader is the read side of the article store consumed by reports.
type ArticleReader interface {
	ArticlesSince(ctx context.Context, since string, limit int) ([]domain.Article, error)
	Recent(ctx context.Context, limit int) ([]domain.Article, error)
	CountByDay(ctx context.Context, since string) ([]domain.DailyCount, error)
	TitlesSince(ctx context.Context, since string, limit int) ([]string, error)
	SourceHealth(ctx context.Context) ([]domain.SourceHealth, error)
}

// Service answers the dashboard's read queries. Every method is a pure
// read and deterministic given the store's current contents.
type Service struct {
	repo      ArticleReader
	extractor *KeywordExtractor
	topN      int
	now       func() time.Time
}

// NewService creates a reporting service over repo.
func NewService(repo ArticleReader, extractor *KeywordExtractor, topN int) *Service {
	return &Service{
		repo:      repo,
		extractor: extractor,
		topN:      topN,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. Used in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// sinceDay returns the inclusive lower bound for a days-long window as a
// calendar-day string.
func (s *Service) sinceDay(days int) string {
	return s.now().UTC().AddDate(0, 0, -days).Format(dayFormat)
}

// Trend returns per-day article counts for the last days days in
// chronological order. Days with no articles appear with a zero count so
// charts draw a continuous axis.
func (s *Service) Trend(ctx context.Context, days int) ([]domain.DailyCount, error) {
	since := s.now().UTC().AddDate(0, 0, -days)

	counts, err := s.repo.CountByDay(ctx, since.Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}

	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[c.Day] = c.Count
	}

	filled := make([]domain.DailyCount, 0, days+1)
	for i := 0; i <= days; i++ {
		day := since.AddDate(0, 0, i).Format(dayFormat)
		filled = append(filled, domain.DailyCount{Day: day, Count: byDay[day]})
	}
	return filled, nil
}

// TopKeywords tokenizes the titles of the last days days and returns the
// most frequent keywords. The same data feeds the word cloud.
func (s *Service) TopKeywords(ctx context.Context, days int) ([]domain.KeywordCount, error) {
	titles, err := s.repo.TitlesSince(ctx, s.sinceDay(days), titlesQueryLimit)
	if err != nil {
		return nil, fmt.Errorf("top keywords: %w", err)
	}
	return s.extractor.Top(titles, s.topN), nil
}

// RecentArticles returns the most recently published articles, newest
// first.
func (s *Service) RecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	articles, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent articles: %w", err)
	}
	return articles, nil
}

// ArticlesSince returns articles from the last days days, newest first.
func (s *Service) ArticlesSince(ctx context.Context, days, limit int) ([]domain.Article, error) {
	articles, err := s.repo.ArticlesSince(ctx, s.sinceDay(days), limit)
	if err != nil {
		return nil, fmt.Errorf("articles since: %w", err)
	}
	return articles, nil
}

// SourceHealth returns per-source article counts and last crawl times.
func (s *Service) SourceHealth(ctx context.Context) ([]domain.SourceHealth, error) {
	health, err := s.repo.SourceHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("source health: %w", err)
	}
	return health, nil
}
