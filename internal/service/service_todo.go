package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService is the concrete implementation of [TodoService].
type todoService struct {
	todoRepository  store.TodoRepository
	groupRepository store.GroupRepository

	logger *logger.Logger
}

// NewTodoService constructs a [TodoService] backed by the given repositories.
// The group repository is used to verify group ownership before a todo is
// attached to a group.
func NewTodoService(todoRepository store.TodoRepository, groupRepository store.GroupRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository:  todoRepository,
		groupRepository: groupRepository,
		logger:          logger,
	}
}

// CreateTodo creates a new todo owned by the caller. Empty text fails
// with ErrValidation. If a group is referenced it must be owned by the
// caller; a group owned by another user fails with store.ErrGroupNotFound
// exactly like an absent one.
func (t *todoService) CreateTodo(ctx context.Context, userID int64, input models.TodoCreate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if input.Text == "" {
		log.Error().Int64("user_id", userID).Msg("empty todo text provided")
		return models.Todo{}, fmt.Errorf("%w: empty todo text", ErrValidation)
	}

	if input.GroupID != nil {
		if err := t.checkGroupOwnership(ctx, userID, *input.GroupID); err != nil {
			return models.Todo{}, err
		}
	}

	todo, err := t.todoRepository.CreateTodo(ctx, models.Todo{
		UserID:  userID,
		GroupID: input.GroupID,
		Text:    input.Text,
		DueDate: input.DueDate,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("todo creation failed")
		return models.Todo{}, fmt.Errorf("todo creation failed: %w", err)
	}

	return todo, nil
}

// GetTodo returns a single todo owned by the caller.
func (t *todoService) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	todo, err := t.todoRepository.GetTodo(ctx, userID, todoID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo lookup failed")
		return models.Todo{}, fmt.Errorf("todo lookup failed: %w", err)
	}

	return todo, nil
}

// ListTodos returns every todo owned by the caller.
func (t *todoService) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	todos, err := t.todoRepository.GetAllUserTodos(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("todo listing failed")
		return nil, fmt.Errorf("todo listing failed: %w", err)
	}

	return todos, nil
}

// UpdateTodo applies a partial update to a todo owned by the caller.
// An empty patch fails with ErrValidation. A patch that moves the todo
// into a group requires the group to be owned by the caller; a GroupID
// of zero clears the group reference instead.
func (t *todoService) UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return models.Todo{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if patch.Text != nil && *patch.Text == "" {
		return models.Todo{}, fmt.Errorf("%w: empty todo text", ErrValidation)
	}

	if patch.GroupID != nil && *patch.GroupID != 0 {
		if err := t.checkGroupOwnership(ctx, userID, *patch.GroupID); err != nil {
			return models.Todo{}, err
		}
	}

	todo, err := t.todoRepository.UpdateTodo(ctx, userID, todoID, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo update failed")
		return models.Todo{}, fmt.Errorf("todo update failed: %w", err)
	}

	return todo, nil
}

// MarkDone marks a todo owned by the caller as completed. Marking an
// already completed todo is a no-op that keeps the original completion
// time.
func (t *todoService) MarkDone(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	todo, err := t.todoRepository.MarkDone(ctx, userID, todoID, time.Now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo completion failed")
		return models.Todo{}, fmt.Errorf("todo completion failed: %w", err)
	}

	return todo, nil
}

// DeleteTodo removes a todo owned by the caller.
func (t *todoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	if err := t.todoRepository.DeleteTodo(ctx, userID, todoID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo deletion failed")
		return fmt.Errorf("todo deletion failed: %w", err)
	}

	return nil
}

func (t *todoService) checkGroupOwnership(ctx context.Context, userID, groupID int64) error {
	if _, err := t.groupRepository.GetGroup(ctx, userID, groupID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("group_id", groupID).Msg("group ownership check failed")
		return fmt.Errorf("group ownership check failed: %w", err)
	}

	return nil
}
