package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGroupNotFound is returned when a group lookup or mutation scoped by
	// owner matches no row. An existing group owned by a different user is
	// indistinguishable from an absent one.
	ErrGroupNotFound = errors.New("todo group was not found")

	// ErrTodoNotFound is returned when a todo lookup or mutation scoped by
	// owner matches no row, under the same non-disclosure rule as
	// [ErrGroupNotFound].
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrSessionNotFound is returned when no session row exists for the
	// given token.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrTransientStorage is returned (wrapping the driver error) when the
	// error classifier deems a failed operation retryable, e.g. after a
	// connection loss or a deadlock rollback. Callers may retry.
	ErrTransientStorage = errors.New("transient storage failure")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a patch with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
