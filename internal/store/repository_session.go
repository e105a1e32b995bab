package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Session rows are written on login, read on every authenticated request,
// and deleted on logout or by the background sweeper.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts a new session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("error: inserting session")
		return r.db.wrapDriverError(err)
	}

	return nil
}

// GetSession retrieves the session row for the given token. Expiry is not
// checked here; the caller owns that decision.
//
// Returns [ErrSessionNotFound] when no row matches.
func (r *sessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, getSession, token)

	if err := row.Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if isNoRows(err) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning session row")
		return models.Session{}, r.db.wrapDriverError(err)
	}

	return session, nil
}

// DeleteSession removes the session with the given token. Deleting an
// unknown token is a no-op, which makes revocation idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: deleting session")
		return r.db.wrapDriverError(err)
	}

	return nil
}

// DeleteExpired reclaims every session whose expiry is at or before now.
// Correctness never depends on this running: GetSession callers treat
// expired rows as absent regardless.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error: deleting expired sessions")
		return 0, r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.wrapDriverError(err)
	}

	return affected, nil
}
