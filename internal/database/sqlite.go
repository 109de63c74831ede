// Package database provides the SQLite article store.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// defaultPingTimeout bounds the connectivity check on open.
	defaultPingTimeout = 5 * time.Second
	// defaultBusyTimeoutMS is how long SQLite waits on a locked database
	// before returning SQLITE_BUSY. Readers tolerate a store mid-crawl;
	// this keeps writer/reader contention from surfacing as errors.
	defaultBusyTimeoutMS = 5000
)

// schema creates the articles table. The UNIQUE(source, url) constraint is
// the deduplication key for re-crawls.
const schema = `
CREATE TABLE IF NOT EXISTS articles (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    source       TEXT NOT NULL,
    url          TEXT NOT NULL,
    title        TEXT NOT NULL,
    category     TEXT NOT NULL DEFAULT 'Lainnya',
    published_at TIMESTAMP NOT NULL,
    crawled_at   TIMESTAMP NOT NULL,
    UNIQUE(source, url)
);
CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at);
CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source);
`

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema exists.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL", path, defaultBusyTimeoutMS)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; keeping one connection avoids
	// lock errors between the crawler and concurrent readers.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(pingCtx); pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	if _, execErr := db.ExecContext(ctx, schema); execErr != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", execErr)
	}

	return db, nil
}
