// Package database is the persistence backend: a SQLite store holding the
// designed tabs, timeline notes, templates, and the shift roster.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle and implements Repository.
type Database struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema and pending migrations.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{db: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tabs (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'dynamic',
			layout TEXT NOT NULL DEFAULT '[]',
			table_name TEXT,
			fields TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT,
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'pending',
			due_date TEXT,
			reminder INTEGER NOT NULL DEFAULT 0,
			last_notified TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			layout TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			group_id TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS groups (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			current_shift TEXT NOT NULL DEFAULT 'Morning'
		);`,
		`CREATE TABLE IF NOT EXISTS shift_schedules (
			date TEXT NOT NULL,
			group_id TEXT NOT NULL,
			shift_type TEXT NOT NULL,
			PRIMARY KEY (date, group_id)
		);`,
	}
	for _, q := range queries {
		if _, err := d.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by older
// builds. Failed ALTERs mean the column already exists.
func (d *Database) migrate(ctx context.Context) {
	alters := []string{
		"ALTER TABLE notes ADD COLUMN priority TEXT NOT NULL DEFAULT 'medium'",
		"ALTER TABLE notes ADD COLUMN due_date TEXT",
		"ALTER TABLE notes ADD COLUMN reminder INTEGER NOT NULL DEFAULT 0",
		"ALTER TABLE notes ADD COLUMN last_notified TEXT",
		"ALTER TABLE tabs ADD COLUMN table_name TEXT",
		"ALTER TABLE tabs ADD COLUMN fields TEXT NOT NULL DEFAULT '[]'",
		"ALTER TABLE groups ADD COLUMN current_shift TEXT NOT NULL DEFAULT 'Morning'",
	}
	for _, q := range alters {
		_, _ = d.db.ExecContext(ctx, q)
	}
}
