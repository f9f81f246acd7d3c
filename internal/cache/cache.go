// Package cache stores generated assembly keyed by source text and mode, so
// recompiling an unchanged file skips analysis and code generation.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS artifacts (
	key        TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	run_id     TEXT NOT NULL,
	assembly   TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Cache is a sqlite-backed artifact store. It is safe for concurrent use.
type Cache struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %s: %w", path, err)
	}
	return &Cache{db: db, path: path}, nil
}

func (c *Cache) Path() string {
	return c.path
}

// Key identifies the output for source compiled in mode.
func Key(mode, source string) string {
	sum := sha256.Sum256([]byte(mode + "\x00" + source))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached assembly for key; ok is false on a miss.
func (c *Cache) Get(ctx context.Context, key string) (assembly string, ok bool, err error) {
	row := c.db.QueryRowContext(ctx, `SELECT assembly FROM artifacts WHERE key = ?`, key)
	switch err := row.Scan(&assembly); {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	return assembly, true, nil
}

// Put stores assembly under key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key, mode, runID, assembly string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO artifacts (key, mode, run_id, assembly, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			mode = excluded.mode,
			run_id = excluded.run_id,
			assembly = excluded.assembly,
			created_at = excluded.created_at`,
		key, mode, runID, assembly, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Len reports how many artifacts are stored.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artifacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
