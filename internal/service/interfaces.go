package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService covers the credential store and the session manager: account
// registration, credential verification, and the session token lifecycle.
type AuthService interface {
	// Register creates a new account and its default group. The password
	// is stored only as a salted one-way hash.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and returns the matching user.
	// Unknown login and wrong password are indistinguishable.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// CreateSession issues a new opaque session token for the user.
	CreateSession(ctx context.Context, userID int64) (models.Session, error)

	// Resolve maps a session token to the user it authenticates.
	// Missing, unknown, and expired tokens all fail with ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (int64, error)

	// Revoke invalidates the session. Revoking an unknown or already
	// revoked token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// UserService exposes profile operations scoped to the authenticated user.
type UserService interface {
	// GetUser returns the user's own record; the credential hash never
	// leaves the service boundary serialized.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial profile update. A password change goes
	// through the same policy check and hashing as registration; the
	// login identifier can never change.
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the account with all its groups, todos, and
	// sessions.
	DeleteUser(ctx context.Context, userID int64) error
}

// GroupService exposes group CRUD scoped to the authenticated user.
type GroupService interface {
	CreateGroup(ctx context.Context, userID int64, input models.GroupCreate) (models.Group, error)
	ListGroups(ctx context.Context, userID int64) ([]models.Group, error)
	UpdateGroup(ctx context.Context, userID, groupID int64, patch models.GroupPatch) (models.Group, error)

	// DeleteGroup removes the group under the configured policy: detach
	// (default) clears the group reference of dependent todos, cascade
	// deletes them.
	DeleteGroup(ctx context.Context, userID, groupID int64) error
}

// TodoService exposes todo CRUD scoped to the authenticated user.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, input models.TodoCreate) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error)
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID int64, patch models.TodoPatch) (models.Todo, error)

	// MarkDone sets the completion flag; repeated calls are no-ops
	// returning the same state.
	MarkDone(ctx context.Context, userID, todoID int64) (models.Todo, error)

	DeleteTodo(ctx context.Context, userID, todoID int64) error
}
