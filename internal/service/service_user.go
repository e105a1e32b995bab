package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the caller's own account record.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial profile update. A supplied password is
// checked against the credential policy and re-hashed; the plaintext is
// never persisted. The login identifier cannot be changed through any
// patch: the repository statement has no login column.
func (u *userService) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if patch.Name == nil && patch.Password == nil {
		return models.User{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	var passwordHash *string
	if patch.Password != nil {
		if err := validatePassword(*patch.Password); err != nil {
			log.Error().Int64("user_id", userID).Msg("new password failed policy check")
			return models.User{}, err
		}

		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		passwordHash = &hash
	}

	updated, err := u.userRepository.UpdateUser(ctx, userID, patch.Name, passwordHash)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the caller's account with all dependent records.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.userRepository.DeleteUserClean(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
