// Package sqlite persists application state in a local SQLite database.
// The layout mirrors the two logical storage keys of the app: one value
// holding the JSON-encoded mistake collection and one holding the
// JSON-encoded settings. Every mutation rewrites the full value, so the
// collection is read-modify-written atomically from the caller's view.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Storage keys. Absence of either key is valid initial state.
const (
	mistakesKey = "mistakes"
	settingsKey = "settings"
)

// DB wraps the SQLite connection shared by the mistake and settings
// stores. The mutex serializes read-modify-write cycles so concurrent
// HTTP handlers cannot interleave collection updates.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Open creates a database connection at the given path and initializes
// the storage table.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS app_storage (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("failed to create storage table: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// get reads the value for key. The second return value reports presence.
func (db *DB) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRowContext(ctx,
		"SELECT value FROM app_storage WHERE key = ?", key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// put upserts the value for key.
func (db *DB) put(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO app_storage (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}
