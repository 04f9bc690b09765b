package localdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	Name    = "local-guides-db"
	Version = 1

	RestaurantsStore = "restaurants"
	ReviewsStore     = "reviews"
)

// DB is the local mirror of the remote collections plus the response cache
// used by the caching transport.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens the mirror at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// OpenMemory creates an in-memory mirror (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

func (d *DB) Path() string {
	return d.path
}

// migrate creates the schema and records the version. Opening a database
// written by a newer schema fails.
func (d *DB) migrate(ctx context.Context) error {
	if _, err := d.ExecContext(ctx, schema); err != nil {
		return err
	}

	var version int
	err := d.QueryRowContext(ctx, `SELECT version FROM meta WHERE name = ?`, Name).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		_, err = d.ExecContext(ctx, `INSERT INTO meta (name, version) VALUES (?, ?)`, Name, Version)
		return err
	case err != nil:
		return err
	case version > Version:
		return fmt.Errorf("%s has schema version %d, this build supports %d", Name, version, Version)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
    name TEXT PRIMARY KEY,
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS restaurants (
    id INTEGER PRIMARY KEY,
    body TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY,
    restaurant_id INTEGER NOT NULL,
    body TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS by_restaurant_id ON reviews(restaurant_id);

CREATE TABLE IF NOT EXISTS responses (
    cache TEXT NOT NULL,
    url TEXT NOT NULL,
    status INTEGER NOT NULL,
    header TEXT NOT NULL DEFAULT '{}',
    body BLOB,
    stored_at INTEGER NOT NULL,
    PRIMARY KEY(cache, url)
);

CREATE INDEX IF NOT EXISTS idx_responses_stored_at ON responses(cache, stored_at);
`
