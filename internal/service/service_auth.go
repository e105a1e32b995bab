package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// defaultGroupName is the name of the non-removable group every new
// account starts with.
const defaultGroupName = "Notes"

// authService is the concrete implementation of [AuthService]. It covers
// both the credential store (registration, verification, bcrypt hashing)
// and the session manager (opaque token issuance, resolution, revocation)
// using the user and session repositories for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository owns all session records; no other component
	// touches session state directly.
	sessionRepository store.SessionRepository

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// repositories and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// It validates the login and password against the account policy, hashes
// the password with bcrypt (per-record random salt), and delegates
// persistence to the user repository, which also creates the account's
// default non-removable group in the same transaction.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrValidation / ErrWeakCredential if the credentials fail policy;
//   - store.ErrLoginAlreadyExists if the login is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateLogin(request.Login); err != nil {
		log.Error().Str("login", request.Login).Msg("invalid login provided")
		return models.User{}, err
	}
	if err := validatePassword(request.Password); err != nil {
		log.Error().Str("login", request.Login).Msg("password failed policy check")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Login:        request.Login,
		Name:         request.Name,
		PasswordHash: hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user, defaultGroupName)
	if err != nil {
		log.Err(err).Str("login", request.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by login and verifies the password against the
// stored bcrypt hash. An unknown login and a wrong password both yield
// ErrInvalidCredentials: the error never confirms whether the account
// exists, and the bcrypt comparison is constant-time with respect to the
// derived digests.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Password == "" {
		log.Error().Msg("empty login or password provided")
		return models.User{}, fmt.Errorf("%w: empty login or password", ErrValidation)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, request.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("login", request.Login).Msg("login attempt for unknown login")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("login", request.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, request.Password) {
		log.Warn().Int64("id", foundUser.ID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateSession issues a new opaque session token for the given user,
// persists the session record, and returns it. The token is 256 bits of
// cryptographically secure randomness; the caller delivers it to the
// client as an http-only cookie.
func (a *authService) CreateSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	now := time.Now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session persistence failed")
		return models.Session{}, fmt.Errorf("session persistence failed: %w", err)
	}

	return session, nil
}

// Resolve maps a session token to the user identity it authenticates.
//
// A missing, unknown, or expired token always fails with
// ErrUnauthenticated; callers cannot tell the cases apart. Expired rows
// count as absent whether or not the background sweeper has reclaimed
// them yet. Transient storage failures are passed through so that the
// transport can report a retryable condition instead of logging the
// caller out.
func (a *authService) Resolve(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return 0, ErrUnauthenticated
	}

	session, err := a.sessionRepository.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return 0, ErrUnauthenticated
		}
		if errors.Is(err, store.ErrTransientStorage) {
			log.Err(err).Msg("transient failure resolving session")
			return 0, err
		}

		log.Err(err).Msg("session lookup failed")
		return 0, ErrUnauthenticated
	}

	if session.Expired(time.Now().UTC()) {
		return 0, ErrUnauthenticated
	}

	return session.UserID, nil
}

// Revoke invalidates the session with the given token. The operation is
// idempotent: revoking an unknown or already revoked token succeeds.
func (a *authService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}
