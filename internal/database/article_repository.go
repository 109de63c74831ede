package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// ArticleRepository handles database operations for articles.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Upsert inserts the article, or updates the mutable fields (title,
// category) of the existing row with the same (source, url). The identity
// and timestamps of the first sighting are preserved on update. It reports
// whether a new row was created.
func (r *ArticleRepository) Upsert(ctx context.Context, article *domain.Article) (bool, error) {
	var existingID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM articles WHERE source = ? AND url = ?`,
		article.Source, article.URL,
	).Scan(&existingID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, insertErr := r.db.ExecContext(ctx, `
			INSERT INTO articles (source, url, title, category, published_at, crawled_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, article.Source, article.URL, article.Title, article.Category,
			article.PublishedAt, article.CrawledAt)
		if insertErr != nil {
			return false, fmt.Errorf("insert article: %w", insertErr)
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			article.ID = id
		}
		return true, nil

	case err != nil:
		return false, fmt.Errorf("look up article: %w", err)

	default:
		_, updateErr := r.db.ExecContext(ctx, `
			UPDATE articles SET title = ?, category = ? WHERE id = ?
		`, article.Title, article.Category, existingID)
		if updateErr != nil {
			return false, fmt.Errorf("update article: %w", updateErr)
		}
		article.ID = existingID
		return false, nil
	}
}

// ArticlesSince returns articles published at or after since, newest
// first, capped at limit.
func (r *ArticleRepository) ArticlesSince(ctx context.Context, since string, limit int) ([]domain.Article, error) {
	articles := []domain.Article{}
	err := r.db.SelectContext(ctx, &articles, `
		SELECT id, source, url, title, category, published_at, crawled_at
		FROM articles
		WHERE published_at >= ?
		ORDER BY published_at DESC, id DESC
		LIMIT ?
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	return articles, nil
}

// Recent returns the most recently published articles, newest first.
func (r *ArticleRepository) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	articles := []domain.Article{}
	err := r.db.SelectContext(ctx, &articles, `
		SELECT id, source, url, title, category, published_at, crawled_at
		FROM articles
		ORDER BY published_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent articles: %w", err)
	}
	return articles, nil
}

// CountByDay returns per-day article counts for articles published at or
// after since, in chronological order. Days with no articles are absent;
// the reporting layer fills the gaps.
func (r *ArticleRepository) CountByDay(ctx context.Context, since string) ([]domain.DailyCount, error) {
	counts := []domain.DailyCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT substr(published_at, 1, 10) AS day, COUNT(*) AS count
		FROM articles
		WHERE published_at >= ?
		GROUP BY day
		ORDER BY day ASC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("count by day: %w", err)
	}
	return counts, nil
}

// TitlesSince returns the titles of articles published at or after since,
// newest first, capped at limit. This feeds keyword extraction.
func (r *ArticleRepository) TitlesSince(ctx context.Context, since string, limit int) ([]string, error) {
	titles := []string{}
	err := r.db.SelectContext(ctx, &titles, `
		SELECT title
		FROM articles
		WHERE published_at >= ?
		ORDER BY published_at DESC, id DESC
		LIMIT ?
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("select titles: %w", err)
	}
	return titles, nil
}

// SourceHealth returns per-source article counts and the latest crawl
// time, ordered by source name.
func (r *ArticleRepository) SourceHealth(ctx context.Context) ([]domain.SourceHealth, error) {
	health := []domain.SourceHealth{}
	err := r.db.SelectContext(ctx, &health, `
		SELECT source, COUNT(*) AS article_count, MAX(crawled_at) AS last_crawled
		FROM articles
		GROUP BY source
		ORDER BY source ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select source health: %w", err)
	}
	return health, nil
}
