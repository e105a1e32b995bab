package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the SQL-backed implementation of [TodoRepository].
// Every mutation carries "AND user_id" in its WHERE clause, so an
// ownership check and the mutation itself are a single atomic statement.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo persists a new todo and returns it with server-assigned
// fields populated.
//
// A foreign-key violation on group_id maps to [ErrGroupNotFound]: it means
// the referenced group vanished between the service-level ownership check
// and this insert.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	row := r.db.QueryRowContext(ctx, createTodo, todo.UserID, todo.GroupID, todo.Text, todo.DueDate, now)

	if err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.GroupID,
		&todo.Text,
		&todo.Done,
		&todo.DueDate,
		&todo.CompletedAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	); err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Int64("user_id", todo.UserID).Msg("error: inserting todo")

		if r.db.isForeignKeyViolation(err) {
			return models.Todo{}, ErrGroupNotFound
		}
		return models.Todo{}, r.db.wrapDriverError(err)
	}

	return todo, nil
}

// GetTodo retrieves a single todo scoped by owner.
// Returns [ErrTodoNotFound] when no row matches.
func (r *todoRepository) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, getTodo, todoID, userID)

	if err := scanTodoRow(row, &todo); err != nil {
		if isNoRows(err) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.GetTodo").Int64("user_id", userID).Msg("error: scanning todo row")
		return models.Todo{}, r.db.wrapDriverError(err)
	}

	return todo, nil
}

// GetAllUserTodos retrieves every todo owned by the given user, ordered by
// id. Returns an empty slice when the user has none.
func (r *todoRepository) GetAllUserTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUserTodos, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetAllUserTodos").Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)

	for rows.Next() {
		var todo models.Todo

		if scanErr := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.GroupID,
			&todo.Text,
			&todo.Done,
			&todo.DueDate,
			&todo.CompletedAt,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "*todoRepository.GetAllUserTodos").Int64("user_id", userID).Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*todoRepository.GetAllUserTodos").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// UpdateTodo applies a partial update built with squirrel, scoped by
// owner, and returns the canonical post-update row.
//
// A foreign-key violation on a group change maps to [ErrGroupNotFound],
// mirroring CreateTodo.
func (r *todoRepository) UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	query, args, err := buildUpdateTodoQuery(userID, todoID, patch, now)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Int64("user_id", userID).Msg("failed to build update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanTodoRow(row, &todo); err != nil {
		if isNoRows(err) {
			return models.Todo{}, ErrTodoNotFound
		}
		if r.db.isForeignKeyViolation(err) {
			return models.Todo{}, ErrGroupNotFound
		}

		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Int64("user_id", userID).Msg("error: scanning updated todo row")
		return models.Todo{}, r.db.wrapDriverError(err)
	}

	return todo, nil
}

// MarkDone sets the completion flag and timestamp in one idempotent
// statement. When the todo is already done the row is returned unchanged,
// so repeated calls observe identical state.
func (r *todoRepository) MarkDone(ctx context.Context, userID, todoID int64, now time.Time) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, markTodoDone, now, todoID, userID)

	if err := scanTodoRow(row, &todo); err != nil {
		if isNoRows(err) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.MarkDone").Int64("user_id", userID).Msg("error: scanning todo row")
		return models.Todo{}, r.db.wrapDriverError(err)
	}

	return todo, nil
}

// DeleteTodo removes the todo scoped by owner. A second delete of the
// same id matches no row and fails with [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTodo, todoID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Int64("user_id", userID).Msg("error: deleting todo")
		return r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDriverError(err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodoRow(row rowScanner, todo *models.Todo) error {
	return row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.GroupID,
		&todo.Text,
		&todo.Done,
		&todo.DueDate,
		&todo.CompletedAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
}
