package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, profile updates, and full
// account removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record together with their default
// non-removable group, in one transaction, and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique-constraint violation on login → [ErrLoginAlreadyExists];
//   - any other driver-level error → classified and wrapped;
//   - scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, defaultGroupName string) (models.User, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash, now)

	if err := row.Scan(&user.ID, &user.Login, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, r.db.wrapDriverError(err)
	}

	if _, err := tx.ExecContext(ctx, createDefaultGroup, user.ID, defaultGroupName, now); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting default group")
		return models.User{}, r.db.wrapDriverError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByLogin retrieves a user record whose login matches the given
// value, including the credential hash for verification.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound];
//   - any other driver-level error → classified and wrapped.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByLogin, login)

	if err := row.Scan(&foundUser.ID, &foundUser.Login, &foundUser.Name, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning user row")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return foundUser, nil
}

// GetUserByID retrieves a user record by its server-assigned identifier.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Scan(&foundUser.ID, &foundUser.Login, &foundUser.Name, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning user row")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return foundUser, nil
}

// UpdateUser applies a partial profile update built with squirrel. Only
// the supplied fields change; the login column is never part of the
// statement. Returns the canonical post-update row.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, name, passwordHash *string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, name, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.ID, &updated.Login, &updated.Name, &updated.PasswordHash, &updated.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("error: scanning updated user row")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return updated, nil
}

// DeleteUserClean removes the user with all their sessions, todos, and
// groups in one transaction. Deleting an absent user fails with
// [ErrNoUserWasFound] and leaves nothing modified.
func (r *userRepository) DeleteUserClean(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserClean").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, query := range []string{deleteUserSessions, deleteUserTodos, deleteUserGroups} {
		if _, err := tx.ExecContext(ctx, query, userID); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUserClean").Int64("user_id", userID).Msg("error: deleting user data")
			return r.db.wrapDriverError(err)
		}
	}

	result, err := tx.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserClean").Int64("user_id", userID).Msg("error: deleting user row")
		return r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDriverError(err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserClean").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
