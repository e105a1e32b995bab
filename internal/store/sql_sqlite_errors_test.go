package store

import (
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func TestSQLiteClassify_Retryable(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	if classifier.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}) != Retryable {
		t.Error("SQLITE_BUSY must be retryable")
	}
	if classifier.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}) != Retryable {
		t.Error("SQLITE_LOCKED must be retryable")
	}
}

func TestSQLiteClassify_NonRetryable(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	if classifier.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}) != NonRetryable {
		t.Error("constraint violations are not retryable")
	}
	if classifier.Classify(errors.New("plain error")) != NonRetryable {
		t.Error("non-sqlite errors are not retryable")
	}
	if classifier.Classify(nil) != NonRetryable {
		t.Error("nil is not retryable")
	}
}

func TestSQLiteIsUniqueViolation(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	if !classifier.IsUniqueViolation(unique) {
		t.Error("expected SQLITE_CONSTRAINT_UNIQUE to be a unique violation")
	}

	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	if !classifier.IsUniqueViolation(pk) {
		t.Error("expected SQLITE_CONSTRAINT_PRIMARYKEY to be a unique violation")
	}

	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	if classifier.IsUniqueViolation(fk) {
		t.Error("foreign-key violations are not unique violations")
	}
}

func TestSQLiteIsForeignKeyViolation(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	if !classifier.IsForeignKeyViolation(fk) {
		t.Error("expected SQLITE_CONSTRAINT_FOREIGNKEY to be a foreign-key violation")
	}
	if classifier.IsForeignKeyViolation(errors.New("plain error")) {
		t.Error("non-sqlite errors are not foreign-key violations")
	}
}
