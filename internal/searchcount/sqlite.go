package searchcount

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"moviegrip/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS search_counts (
	id TEXT PRIMARY KEY,
	search_term TEXT NOT NULL UNIQUE,
	count INTEGER NOT NULL DEFAULT 1,
	movie_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	poster_path TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_search_counts_count ON search_counts(count DESC, updated_at DESC);
`

// SQLiteStore keeps search counts in a SQLite database
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Writes come from background goroutines; serialize them
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Increment inserts query with count 1 or bumps its count, refreshing the top result
func (s *SQLiteStore) Increment(ctx context.Context, query string, top domain.Movie) error {
	term, err := normalizeQuery(query)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO search_counts (id, search_term, count, movie_id, title, poster_path, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?, ?)
		ON CONFLICT(search_term) DO UPDATE SET
			count = count + 1,
			movie_id = excluded.movie_id,
			title = excluded.title,
			poster_path = excluded.poster_path,
			updated_at = excluded.updated_at`,
		uuid.NewString(), term, top.ID, top.Title, top.PosterPath, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to increment search count for %q: %w", term, err)
	}
	return nil
}

// Trending returns the most searched terms
func (s *SQLiteStore) Trending(ctx context.Context, limit int) ([]domain.TrendingEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, search_term, count, movie_id, title, poster_path, updated_at
		FROM search_counts
		ORDER BY count DESC, updated_at DESC
		LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query trending: %w", err)
	}
	defer rows.Close()

	entries := []domain.TrendingEntry{}
	for rows.Next() {
		var e domain.TrendingEntry
		if err := rows.Scan(&e.ID, &e.SearchTerm, &e.Count, &e.MovieID, &e.Title, &e.PosterPath, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trending entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
