// Package store implements shop persistence over the SQLite database.
//
// Each concern (catalog, users, orders, reviews, contact) gets its own store
// struct over the shared database handle. Failures that handlers translate
// to client-facing statuses are reported through the sentinel errors below;
// anything else is an internal error.
package store

import (
	"errors"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound signals a single-entity lookup or targeted write that
	// matched no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate unique key (user email, category name).
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference signals a write whose required reference
	// (category parent, product subcategory, item product) does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrValidation signals a malformed or out-of-range field value.
	ErrValidation = errors.New("invalid input")
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3lib.SQLITE_CONSTRAINT:
			return true
		}
	}
	return false
}
