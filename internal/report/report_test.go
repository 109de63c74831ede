package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
	"github.com/diskominfo-jombang/newsmon/internal/report"
)

// fakeReader is an in-memory ArticleReader for service tests.
type fakeReader struct {
	counts   []domain.DailyCount
	titles   []string
	articles []domain.Article
	health   []domain.SourceHealth
	err      error
}

func (f *fakeReader) ArticlesSince(ctx context.Context, since string, limit int) ([]domain.Article, error) {
	return f.articles, f.err
}

func (f *fakeReader) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	return f.articles, f.err
}

func (f *fakeReader) CountByDay(ctx context.Context, since string) ([]domain.DailyCount, error) {
	return f.counts, f.err
}

func (f *fakeReader) TitlesSince(ctx context.Context, since string, limit int) ([]string, error) {
	return f.titles, f.err
}

func (f *fakeReader) SourceHealth(ctx context.Context) ([]domain.SourceHealth, error) {
	return f.health, f.err
}

func newService(repo *fakeReader) *report.Service {
	extractor := report.NewKeywordExtractor(3, []string{"melanda", "siaga"})
	svc := report.NewService(repo, extractor, 20)
	// Fixed clock: 2024-05-02 12:00 UTC.
	return svc.WithClock(func() time.Time {
		return time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	})
}

func TestService_Trend_FillsMissingDays(t *testing.T) {
	t.Parallel()

	repo := &fakeReader{
		counts: []domain.DailyCount{
			{Day: "2024-05-01", Count: 2},
			{Day: "2024-05-02", Count: 1},
		},
	}
	svc := newService(repo)

	trend, err := svc.Trend(context.Background(), 2)
	require.NoError(t, err)

	require.Equal(t, []domain.DailyCount{
		{Day: "2024-04-30", Count: 0},
		{Day: "2024-05-01", Count: 2},
		{Day: "2024-05-02", Count: 1},
	}, trend)
}

func TestService_Trend_ChronologicalOrder(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeReader{})

	trend, err := svc.Trend(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, trend, 8)

	for i := 1; i < len(trend); i++ {
		require.Less(t, trend[i-1].Day, trend[i].Day)
	}
}

func TestService_TopKeywords(t *testing.T) {
	t.Parallel()

	repo := &fakeReader{
		titles: []string{
			"Banjir melanda Jombang",
			"Jombang siaga banjir",
			"Festival budaya Jombang",
		},
	}
	svc := newService(repo)

	keywords, err := svc.TopKeywords(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, domain.KeywordCount{Keyword: "jombang", Count: 3}, keywords[0])
	require.Equal(t, domain.KeywordCount{Keyword: "banjir", Count: 2}, keywords[1])
}

func TestService_ReadErrorsPropagate(t *testing.T) {
	t.Parallel()

	repo := &fakeReader{err: errors.New("disk gone")}
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Trend(ctx, 7)
	require.Error(t, err)

	_, err = svc.TopKeywords(ctx, 7)
	require.Error(t, err)

	_, err = svc.RecentArticles(ctx, 10)
	require.Error(t, err)

	_, err = svc.SourceHealth(ctx)
	require.Error(t, err)
}
