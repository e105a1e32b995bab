package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authProbe wires the auth middleware around a handler that records what
// reached the request context.
func authProbe(auth *mockAuthService) (http.Handler, *struct {
	called bool
	userID int64
	token  string
}) {
	captured := &struct {
		called bool
		userID int64
		token  string
	}{}

	handler := NewHandler(newMockServices(auth, nil, nil, nil), logger.Nop())
	wrapped := handler.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.called = true
		captured.userID, _ = utils.GetUserIDFromContext(r.Context())
		captured.token, _ = utils.GetSessionTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	return wrapped, captured
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, token string) (int64, error) {
			assert.Equal(t, testToken, token)
			return 42, nil
		},
	}
	wrapped, captured := authProbe(auth)

	request := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, captured.called)
	assert.Equal(t, int64(42), captured.userID)
	assert.Equal(t, testToken, captured.token)
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	wrapped, captured := authProbe(&mockAuthService{})

	request := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, captured.called)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	wrapped, captured := authProbe(&mockAuthService{})

	request := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, captured.called)
}

func TestAuthMiddleware_ExpiredOrUnknownSession(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, _ string) (int64, error) {
			return 0, service.ErrUnauthenticated
		},
	}
	wrapped, captured := authProbe(auth)

	request := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, captured.called)
}

// A storage outage during session resolution must surface as 503, not as
// a 401 that would make a client discard a perfectly valid session.
func TestAuthMiddleware_TransientStorageFailure(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, _ string) (int64, error) {
			return 0, store.ErrTransientStorage
		},
	}
	wrapped, captured := authProbe(auth)

	request := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.False(t, captured.called)
	assert.Equal(t, models.KindTransient, decodeErrorResponse(t, recorder).Kind)
}
