// Package storage provides the key-value store the repositories persist
// into: JSON-serializable values addressed by string key, backed by a
// single SQLite table.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCapacityExceeded is returned by Write when the encoded value is
// larger than the configured capacity. The previously stored value at
// that key is left untouched.
var ErrCapacityExceeded = errors.New("storage capacity exceeded")

// DefaultCapacityBytes caps a single value at roughly the size budget a
// browser key-value store would allow.
const DefaultCapacityBytes = 5 * 1024 * 1024

// KV is a SQLite-backed key-value store.
type KV struct {
	db       *sql.DB
	capacity int
}

// NewKV opens (and migrates) a key-value store at the given DSN. A
// capacity of 0 selects DefaultCapacityBytes.
func NewKV(dsn string, capacity int) (*KV, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection so data survives across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if capacity <= 0 {
		capacity = DefaultCapacityBytes
	}

	kv := &KV{db: db, capacity: capacity}
	if err := kv.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return kv, nil
}

func (kv *KV) migrate() error {
	_, err := kv.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (kv *KV) Close() error {
	return kv.db.Close()
}

// Read returns the JSON value stored at key. A missing key and an
// unparseable value both report absence: the studio treats corrupt JSON
// as "never written" rather than an error. That can mask real data loss,
// so the corrupt case is logged before being swallowed.
func (kv *KV) Read(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := kv.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !json.Valid([]byte(value)) {
		log.Printf("WARN: discarding unparseable value at key %s (%d bytes)", key, len(value))
		return nil, false, nil
	}
	return json.RawMessage(value), true, nil
}

// Write stores a JSON value at key. When the value exceeds the capacity
// limit the write is dropped, the prior value stays intact, and
// ErrCapacityExceeded is returned so the caller can notify the UI.
func (kv *KV) Write(ctx context.Context, key string, value json.RawMessage) error {
	if len(value) > kv.capacity {
		return ErrCapacityExceeded
	}
	_, err := kv.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored at key. Deleting a missing key is not
// an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	_, err := kv.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
