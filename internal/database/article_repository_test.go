package database_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/diskominfo-jombang/newsmon/internal/database"
	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// articleColumns lists the columns returned by article SELECT queries.
var articleColumns = []string{
	"id", "source", "url", "title", "category", "published_at", "crawled_at",
}

func newArticleRepo(t *testing.T) (*database.ArticleRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db := sqlx.NewDb(mockDB, "sqlite3")
	repo := database.NewArticleRepository(db)

	return repo, mock, func() { mockDB.Close() }
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestArticleRepository_Upsert_NewArticle(t *testing.T) {
	repo, mock, cleanup := newArticleRepo(t)
	defer cleanup()

	ctx := context.Background()
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	crawled := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id FROM articles").
		WithArgs("portalA", "https://x/1").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectExec("INSERT INTO articles").
		WithArgs("portalA", "https://x/1", "Banjir melanda Jombang", "Lainnya", published, crawled).
		WillReturnResult(sqlmock.NewResult(7, 1))

	article := &domain.Article{
		Source:      "portalA",
		URL:         "https://x/1",
		Title:       "Banjir melanda Jombang",
		Category:    "Lainnya",
		PublishedAt: published,
		CrawledAt:   crawled,
	}

	created, err := repo.Upsert(ctx, article)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !created {
		t.Error("expected a new row to be created")
	}
	if article.ID != 7 {
		t.Errorf("expected ID 7, got %d", article.ID)
	}

	expectationsMet(t, mock)
}

func TestArticleRepository_Upsert_ExistingArticleUpdatesTitle(t *testing.T) {
	repo, mock, cleanup := newArticleRepo(t)
	defer cleanup()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM articles").
		WithArgs("portalA", "https://x/1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	mock.ExpectExec("UPDATE articles SET title").
		WithArgs("B", "Hukum", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	article := &domain.Article{
		Source:      "portalA",
		URL:         "https://x/1",
		Title:       "B",
		Category:    "Hukum",
		PublishedAt: time.Now(),
		CrawledAt:   time.Now(),
	}

	created, err := repo.Upsert(ctx, article)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if created {
		t.Error("expected an update, not a new row")
	}
	if article.ID != 3 {
		t.Errorf("expected existing ID 3, got %d", article.ID)
	}

	expectationsMet(t, mock)
}

func TestArticleRepository_CountByDay(t *testing.T) {
	repo, mock, cleanup := newArticleRepo(t)
	defer cleanup()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"day", "count"}).
		AddRow("2024-05-01", 2).
		AddRow("2024-05-02", 1)

	mock.ExpectQuery("SELECT substr\\(published_at, 1, 10\\) AS day").
		WithArgs("2024-04-26").
		WillReturnRows(rows)

	counts, err := repo.CountByDay(ctx, "2024-04-26")
	if err != nil {
		t.Fatalf("CountByDay failed: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(counts))
	}
	if counts[0].Day != "2024-05-01" || counts[0].Count != 2 {
		t.Errorf("unexpected first row: %+v", counts[0])
	}
	if counts[1].Day != "2024-05-02" || counts[1].Count != 1 {
		t.Errorf("unexpected second row: %+v", counts[1])
	}

	expectationsMet(t, mock)
}

func TestArticleRepository_Recent(t *testing.T) {
	repo, mock, cleanup := newArticleRepo(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(articleColumns).
		AddRow(2, "portalB", "https://y/2", "Festival budaya Jombang", "Lainnya", now, now).
		AddRow(1, "portalA", "https://x/1", "Banjir melanda Jombang", "Lainnya", now.Add(-time.Hour), now)

	mock.ExpectQuery("SELECT id, source, url, title, category, published_at, crawled_at").
		WithArgs(10).
		WillReturnRows(rows)

	articles, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].URL != "https://y/2" {
		t.Errorf("expected newest article first, got %s", articles[0].URL)
	}

	expectationsMet(t, mock)
}

func TestArticleRepository_SourceHealth(t *testing.T) {
	repo, mock, cleanup := newArticleRepo(t)
	defer cleanup()

	ctx := context.Background()
	lastCrawled := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"source", "article_count", "last_crawled"}).
		AddRow("beritajombang.com", 42, lastCrawled).
		AddRow("kabarjombang.com", 17, lastCrawled)

	mock.ExpectQuery("SELECT source, COUNT\\(\\*\\) AS article_count").
		WillReturnRows(rows)

	health, err := repo.SourceHealth(ctx)
	if err != nil {
		t.Fatalf("SourceHealth failed: %v", err)
	}

	if len(health) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(health))
	}
	if health[0].Source != "beritajombang.com" || health[0].ArticleCount != 42 {
		t.Errorf("unexpected first source: %+v", health[0])
	}

	expectationsMet(t, mock)
}
