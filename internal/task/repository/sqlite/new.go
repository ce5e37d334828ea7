package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens the database file at path, creating its directory if needed,
// and applies the schema. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string, maxOpenConns int) (*sql.DB, error) {
	if path == ":memory:" {
		// Each connection to ":memory:" is a separate empty database.
		maxOpenConns = 1
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(DriverName, path+separator(path)+"_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables and indexes the repository needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			due_date DATETIME,
			priority INTEGER NOT NULL DEFAULT 2 CHECK (priority BETWEEN 1 AND 4),
			category TEXT NOT NULL DEFAULT 'other',
			completed BOOLEAN NOT NULL DEFAULT 0,
			calendar_event_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
		CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category);
		CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func separator(dsn string) string {
	if strings.Contains(dsn, "?") {
		return "&"
	}
	return "?"
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
