package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// groupService is the concrete implementation of [GroupService].
type groupService struct {
	groupRepository store.GroupRepository

	// deletePolicy selects detach or cascade behavior for DeleteGroup.
	// Validated at configuration load time.
	deletePolicy string

	logger *logger.Logger
}

// NewGroupService constructs a [GroupService] backed by the given
// repository and configured with the group deletion policy.
func NewGroupService(groupRepository store.GroupRepository, cfg config.App, logger *logger.Logger) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		deletePolicy:    cfg.GroupDeletePolicy,
		logger:          logger,
	}
}

// CreateGroup creates a new removable group owned by the caller.
// Fails with ErrValidation on an empty name.
func (g *groupService) CreateGroup(ctx context.Context, userID int64, input models.GroupCreate) (models.Group, error) {
	log := logger.FromContext(ctx)

	if input.Name == "" {
		log.Error().Int64("user_id", userID).Msg("empty group name provided")
		return models.Group{}, fmt.Errorf("%w: empty group name", ErrValidation)
	}

	group, err := g.groupRepository.CreateGroup(ctx, models.Group{
		UserID: userID,
		Name:   input.Name,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("group creation failed")
		return models.Group{}, fmt.Errorf("group creation failed: %w", err)
	}

	return group, nil
}

// ListGroups returns every group owned by the caller.
func (g *groupService) ListGroups(ctx context.Context, userID int64) ([]models.Group, error) {
	groups, err := g.groupRepository.GetAllUserGroups(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("group listing failed")
		return nil, fmt.Errorf("group listing failed: %w", err)
	}

	return groups, nil
}

// UpdateGroup renames a group owned by the caller. An empty patch and an
// empty name both fail with ErrValidation; a group owned by someone else
// fails with store.ErrGroupNotFound, indistinguishable from an absent one.
func (g *groupService) UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error) {
	log := logger.FromContext(ctx)

	if patch.Name == nil {
		return models.Group{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if *patch.Name == "" {
		return models.Group{}, fmt.Errorf("%w: empty group name", ErrValidation)
	}

	group, err := g.groupRepository.UpdateGroup(ctx, userID, groupID, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("group_id", groupID).Msg("group update failed")
		return models.Group{}, fmt.Errorf("group update failed: %w", err)
	}

	return group, nil
}

// DeleteGroup removes a group owned by the caller under the configured
// policy. With the default detach policy every todo that referenced the
// group keeps its content and loses only the reference; cascade deletes
// the todos as well. The default group created at registration is not
// removable.
func (g *groupService) DeleteGroup(ctx context.Context, userID, groupID int64) error {
	log := logger.FromContext(ctx)

	group, err := g.groupRepository.GetGroup(ctx, userID, groupID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("group_id", groupID).Msg("group lookup failed")
		return fmt.Errorf("group lookup failed: %w", err)
	}

	if !group.Removable {
		log.Warn().Int64("user_id", userID).Int64("group_id", groupID).Msg("attempt to delete non-removable group")
		return ErrGroupNotRemovable
	}

	if g.deletePolicy == config.GroupDeleteCascade {
		err = g.groupRepository.DeleteGroupCascade(ctx, userID, groupID)
	} else {
		err = g.groupRepository.DeleteGroupDetach(ctx, userID, groupID)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("group_id", groupID).Msg("group deletion failed")
		return fmt.Errorf("group deletion failed: %w", err)
	}

	return nil
}
