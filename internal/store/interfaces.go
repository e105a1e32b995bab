package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user together with their default
	// non-removable group, atomically. Returns the persisted user with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User, defaultGroupName string) (models.User, error)

	// FindUserByLogin retrieves the user with the given login,
	// including the credential hash.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// GetUserByID retrieves the user with the given id.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial profile update. Nil fields are left
	// unchanged; the login column is never touched.
	UpdateUser(ctx context.Context, userID int64, name, passwordHash *string) (models.User, error)

	// DeleteUserClean removes the user together with all their sessions,
	// todos, and groups in one transaction.
	DeleteUserClean(ctx context.Context, userID int64) error
}

// SessionRepository persists session records. It is the only component
// that owns session state.
type SessionRepository interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession retrieves the session with the given token regardless of
	// expiry; the caller decides whether an expired row still counts.
	GetSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes the session with the given token.
	// Deleting an unknown token is not an error.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpired removes every session whose expiry is at or before
	// now, returning the number of reclaimed rows.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// GroupRepository persists todo groups, always scoped by owner.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	GetGroup(ctx context.Context, userID, groupID int64) (models.Group, error)
	GetAllUserGroups(ctx context.Context, userID int64) ([]models.Group, error)
	UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error)

	// DeleteGroupDetach deletes the group and clears the group reference
	// of every todo that pointed at it, atomically.
	DeleteGroupDetach(ctx context.Context, userID, groupID int64) error

	// DeleteGroupCascade deletes the group together with every todo filed
	// under it, atomically.
	DeleteGroupCascade(ctx context.Context, userID, groupID int64) error
}

// TodoRepository persists todos, always scoped by owner.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error)
	GetAllUserTodos(ctx context.Context, userID int64) ([]models.Todo, error)

	// UpdateTodo applies a partial update; only non-nil patch fields
	// change. A non-nil GroupID with value 0 clears the group reference.
	UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error)

	// MarkDone sets the completion flag and completion timestamp in one
	// idempotent statement: a second call leaves the row unchanged.
	MarkDone(ctx context.Context, userID, todoID int64, now time.Time) (models.Todo, error)

	// DeleteTodo removes the todo. A second delete of the same id fails
	// with ErrTodoNotFound.
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// ErrorClassificator inspects driver-level errors so that repositories can
// translate them into domain sentinels without depending on a concrete
// database backend.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint
	// violation (e.g. duplicate login).
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err is a foreign-key
	// violation (e.g. a todo referencing a vanished group).
	IsForeignKeyViolation(err error) bool
}
