// Package store persists client-side selection state (active project,
// language, category, and their known lists) across restarts. Each named
// store is one record in a local sqlite settings table, hydrated at startup
// and written through on every mutation.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) the sqlite state database at dbPath.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("store: make db dir: %w", err)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create state table: %w", err)
	}
	return db, nil
}

// Repo reads and writes named state records.
type Repo struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// NewRepo creates a Repo over an opened state database.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db, sq: sq.StatementBuilder}
}

// Get returns the raw value for a key. ok is false when the key has never
// been written.
func (r *Repo) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	q := r.sq.Select("value").From("state").Where(sq.Eq{"key": key}).Limit(1)
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return "", false, fmt.Errorf("store: build select: %w", err)
	}
	row := r.db.QueryRowContext(ctx, sqlStr, args...)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for a key.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	q := r.sq.Insert("state").Columns("key", "value").Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("store: build upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	return nil
}

// loadJSON hydrates target from the key's record. Returns false when the
// key has never been written.
func loadJSON[T any](ctx context.Context, repo *Repo, key string, target *T) (bool, error) {
	raw, ok, err := repo.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("store: decode %q: %w", key, err)
	}
	return true, nil
}

// saveJSON writes value through to the key's record.
func saveJSON[T any](ctx context.Context, repo *Repo, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	return repo.Set(ctx, key, string(raw))
}
