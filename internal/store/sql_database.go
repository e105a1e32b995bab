package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB wraps the standard library connection pool together with the
// driver-specific error classifier and a logger. All repositories share
// one *DB instance.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// wrapDriverError translates a raw driver error into the repository error
// taxonomy: retryable failures are tagged with [ErrTransientStorage] so
// that callers can distinguish "safe to retry" from everything else.
func (db *DB) wrapDriverError(err error) error {
	if err == nil {
		return nil
	}

	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransientStorage, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// on the connected backend.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

// isForeignKeyViolation reports whether err is a foreign-key violation on
// the connected backend.
func (db *DB) isForeignKeyViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsForeignKeyViolation(err)
}

// isNoRows reports whether err signals an empty result set.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
