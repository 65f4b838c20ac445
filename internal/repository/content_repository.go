package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// WriteObserver receives timings for document writes; implemented by the
// metrics service.
type WriteObserver interface {
	ObserveStoreWrite(key string, duration time.Duration, failed bool)
}

// ContentRepository persists one JSON document per storage key in the local
// content database. It is the durable half of the content stores.
type ContentRepository struct {
	db       *sqlx.DB
	observer WriteObserver
}

// NewContentRepository creates the repository. observer may be nil.
func NewContentRepository(db *sqlx.DB, observer WriteObserver) *ContentRepository {
	return &ContentRepository{db: db, observer: observer}
}

// EnsureSchema creates the backing table when missing.
func (r *ContentRepository) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS content_store (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create content_store table: %w", err)
	}
	return nil
}

// Get returns the document stored under key. The boolean reports presence.
func (r *ContentRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM content_store WHERE key = ?`
	var value string
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read document %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set replaces the document stored under key. Last write wins.
func (r *ContentRepository) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO content_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if r.observer != nil {
		r.observer.ObserveStoreWrite(key, time.Since(start), err != nil)
	}
	if err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}
