// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-todo-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples client code
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that stores the session cookie in
// an in-memory cookie jar.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-todo-keeper server. Implementations are responsible for serialisation,
// session cookie management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// Register creates a new account and starts a session. On success the
	// session cookie returned by the server is stored for all subsequent
	// requests.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with the server. On success the session cookie
	// returned by the server replaces any previously stored one.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Logout revokes the current session on the server and drops the
	// stored cookie.
	Logout(ctx context.Context) error

	// GetUser fetches the authenticated user's own record.
	GetUser(ctx context.Context) (models.User, error)

	// UpdateUser applies a partial profile update.
	UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the account with everything it owns.
	DeleteUser(ctx context.Context) error

	CreateTodo(ctx context.Context, input models.TodoCreate) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, todoID int64, patch models.TodoPatch) (models.Todo, error)
	MarkDone(ctx context.Context, todoID int64) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID int64) error

	CreateGroup(ctx context.Context, input models.GroupCreate) (models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	UpdateGroup(ctx context.Context, groupID int64, patch models.GroupPatch) (models.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error
}
