package kvstore

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

const upsertSQL = `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`

// SQLiteConfig holds the configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// Validate ensures the configuration is usable
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	return vb.Build()
}

// SQLiteStore keeps every key in a single table of a local database file.
// It is meant for a single writer.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at cfg.Path
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.Path)
	}
	// one connection keeps writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	slog.Debug("sqlite store opened", "path", cfg.Path)

	return &SQLiteStore{db: db}, nil
}

var _ Store = (*SQLiteStore)(nil)

// Get returns the value stored at key
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.InvalidArgument("key is required")
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("key %s not found", key)
		}
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return []byte(value), nil
}

// Set upserts value at key
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.InvalidArgument("key is required")
	}

	if _, err := s.db.ExecContext(ctx, upsertSQL, key, string(value)); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

// Delete removes the given keys
func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	query := "DELETE FROM kv WHERE key IN (" + placeholders + ")"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to delete keys")
	}

	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
