package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// groupRepository is the SQL-backed implementation of [GroupRepository].
// Every query is scoped by owner: a group owned by another user behaves
// exactly like an absent one.
type groupRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGroupRepository constructs a [GroupRepository] backed by the provided
// database connection and logger.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGroup persists a new removable group and returns it with
// server-assigned fields populated.
func (r *groupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	row := r.db.QueryRowContext(ctx, createGroup, group.UserID, group.Name, now)

	if err := row.Scan(&group.ID, &group.UserID, &group.Name, &group.Removable, &group.CreatedAt); err != nil {
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Int64("user_id", group.UserID).Msg("error: inserting group")
		return models.Group{}, r.db.wrapDriverError(err)
	}

	return group, nil
}

// GetGroup retrieves a single group scoped by owner.
// Returns [ErrGroupNotFound] when no row matches.
func (r *groupRepository) GetGroup(ctx context.Context, userID, groupID int64) (models.Group, error) {
	log := logger.FromContext(ctx)

	var group models.Group
	row := r.db.QueryRowContext(ctx, getGroup, groupID, userID)

	if err := row.Scan(&group.ID, &group.UserID, &group.Name, &group.Removable, &group.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.Group{}, ErrGroupNotFound
		}

		log.Err(err).Str("func", "*groupRepository.GetGroup").Int64("user_id", userID).Msg("error: scanning group row")
		return models.Group{}, r.db.wrapDriverError(err)
	}

	return group, nil
}

// GetAllUserGroups retrieves every group owned by the given user, ordered
// by id. Returns an empty slice when the user has none.
func (r *groupRepository) GetAllUserGroups(ctx context.Context, userID int64) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUserGroups, userID)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.GetAllUserGroups").Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0, 8)

	for rows.Next() {
		var group models.Group

		if scanErr := rows.Scan(&group.ID, &group.UserID, &group.Name, &group.Removable, &group.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*groupRepository.GetAllUserGroups").Int64("user_id", userID).Msg("failed to scan group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		groups = append(groups, group)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*groupRepository.GetAllUserGroups").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return groups, nil
}

// UpdateGroup applies a partial update built with squirrel, scoped by
// owner, and returns the canonical post-update row.
func (r *groupRepository) UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateGroupQuery(userID, groupID, patch)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.UpdateGroup").Int64("user_id", userID).Msg("failed to build update query")
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var group models.Group
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&group.ID, &group.UserID, &group.Name, &group.Removable, &group.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.Group{}, ErrGroupNotFound
		}

		log.Err(err).Str("func", "*groupRepository.UpdateGroup").Int64("user_id", userID).Msg("error: scanning updated group row")
		return models.Group{}, r.db.wrapDriverError(err)
	}

	return group, nil
}

// DeleteGroupDetach deletes the group and clears the group reference of
// every todo that pointed at it. Both steps run in one transaction so
// concurrent readers observe either the old state or the new one, never
// a half-applied mix.
func (r *groupRepository) DeleteGroupDetach(ctx context.Context, userID, groupID int64) error {
	return r.deleteGroup(ctx, userID, groupID, true)
}

// DeleteGroupCascade deletes the group together with every todo filed
// under it, in one transaction.
func (r *groupRepository) DeleteGroupCascade(ctx context.Context, userID, groupID int64) error {
	return r.deleteGroup(ctx, userID, groupID, false)
}

func (r *groupRepository) deleteGroup(ctx context.Context, userID, groupID int64, detach bool) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.deleteGroup").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if detach {
		now := time.Now().UTC()
		_, err = tx.ExecContext(ctx, detachGroupTodos, now, groupID, userID)
	} else {
		_, err = tx.ExecContext(ctx, deleteGroupTodos, groupID, userID)
	}
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.deleteGroup").Int64("group_id", groupID).Msg("error: handling group todos")
		return r.db.wrapDriverError(err)
	}

	result, err := tx.ExecContext(ctx, deleteGroup, groupID, userID)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.deleteGroup").Int64("group_id", groupID).Msg("error: deleting group row")
		return r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDriverError(err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*groupRepository.deleteGroup").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
