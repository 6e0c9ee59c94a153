// Package sqlite implements the embedded relational store behind the repositories.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/jhpk/purchtrac/internal/errs"
)

// Table names used for change notifications.
const (
	TableUsers    = "users"
	TableAccounts = "accounts"
	TableProducts = "products"
	TableMemos    = "memos"
)

// DB wraps the shared database handle and the table change hub. One DB is
// constructed at startup and passed to every dependent component.
type DB struct {
	*sql.DB
	hub *hub
}

// Open opens (creating if needed) the database file with WAL journaling and
// foreign keys enforced on every connection.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: db, hub: newHub()}, nil
}

// Subscribe registers a watcher for changes to the given table. The returned
// cancel func must be called when the watcher is torn down.
func (db *DB) Subscribe(table string) (<-chan struct{}, func()) {
	return db.hub.Subscribe(table)
}

func (db *DB) notify(tables ...string) {
	for _, t := range tables {
		db.hub.Notify(t)
	}
}

// mapErr translates driver constraint failures into the shared sentinel so
// callers can test with errors.Is.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%v: %w", err, errs.ErrConstraint)
	}
	return err
}

// nullableID turns the sentinel 0 into NULL so sqlite assigns a fresh id.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
