package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: service.ErrValidation, status: http.StatusBadRequest},
		{name: "weak credential", err: service.ErrWeakCredential, status: http.StatusBadRequest},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "unauthenticated", err: service.ErrUnauthenticated, status: http.StatusUnauthorized},
		{name: "group not removable", err: service.ErrGroupNotRemovable, status: http.StatusConflict},
		{name: "duplicate login", err: store.ErrLoginAlreadyExists, status: http.StatusConflict},
		{name: "user not found", err: store.ErrNoUserWasFound, status: http.StatusNotFound},
		{name: "group not found", err: store.ErrGroupNotFound, status: http.StatusNotFound},
		{name: "todo not found", err: store.ErrTodoNotFound, status: http.StatusNotFound},
		{name: "session not found", err: store.ErrSessionNotFound, status: http.StatusUnauthorized},
		{name: "transient storage", err: store.ErrTransientStorage, status: http.StatusServiceUnavailable},
		{name: "no session cookie", err: ErrNoSessionCookie, status: http.StatusUnauthorized},
		{name: "invalid url parameter", err: ErrInvalidURLParameter, status: http.StatusBadRequest},
		{name: "query execution", err: store.ErrExecutingQuery, status: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("todo creation failed: %w", store.ErrGroupNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(err))
}

func TestKindFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{name: "validation", err: service.ErrValidation, kind: models.KindValidation},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, kind: models.KindInvalidCredentials},
		{name: "duplicate login", err: store.ErrLoginAlreadyExists, kind: models.KindDuplicateLogin},
		{name: "conflict", err: service.ErrGroupNotRemovable, kind: models.KindConflict},
		{name: "transient", err: store.ErrTransientStorage, kind: models.KindTransient},
		{name: "unknown defaults to internal", err: errors.New("boom"), kind: models.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, kindFromError(tt.err))
		})
	}
}

func TestWriteError_ClientErrorKeepsMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/todo/create", nil)

	writeError(recorder, request, fmt.Errorf("%w: empty todo text", service.ErrValidation))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeErrorResponse(t, recorder)
	assert.Equal(t, models.KindValidation, response.Kind)
	assert.Contains(t, response.Message, "empty todo text")
}

// Internal failures must never leak storage details to the client.
func TestWriteError_InternalErrorMasked(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/todo/get", nil)

	writeError(recorder, request, fmt.Errorf("%w: connection refused to db-host:5432", store.ErrExecutingQuery))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	response := decodeErrorResponse(t, recorder)
	assert.Equal(t, models.KindInternal, response.Kind)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), response.Message)
	assert.NotContains(t, response.Message, "db-host")
}
