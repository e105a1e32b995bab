package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// errorStatusMap resolves service and store sentinels to HTTP status codes.
// Sentinels absent from the map fall through to 500.
var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrWeakCredential:     http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrGroupNotRemovable:  http.StatusConflict,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrGroupNotFound:      http.StatusNotFound,
	store.ErrTodoNotFound:       http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,
	store.ErrTransientStorage:   http.StatusServiceUnavailable,

	ErrNoSessionCookie:     http.StatusUnauthorized,
	ErrEmptySessionToken:   http.StatusUnauthorized,
	ErrInvalidURLParameter: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorKindMap resolves the same sentinels to machine-readable error kinds
// carried in the response body.
var errorKindMap = map[error]string{
	service.ErrValidation:         models.KindValidation,
	service.ErrWeakCredential:     models.KindValidation,
	service.ErrInvalidCredentials: models.KindInvalidCredentials,
	service.ErrUnauthenticated:    models.KindUnauthenticated,
	service.ErrGroupNotRemovable:  models.KindConflict,

	store.ErrLoginAlreadyExists: models.KindDuplicateLogin,
	store.ErrNoUserWasFound:     models.KindNotFound,
	store.ErrGroupNotFound:      models.KindNotFound,
	store.ErrTodoNotFound:       models.KindNotFound,
	store.ErrSessionNotFound:    models.KindUnauthenticated,
	store.ErrTransientStorage:   models.KindTransient,

	ErrNoSessionCookie:     models.KindUnauthenticated,
	ErrEmptySessionToken:   models.KindUnauthenticated,
	ErrInvalidURLParameter: models.KindValidation,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func kindFromError(err error) string {
	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return kind
		}
	}
	return models.KindInternal
}

// writeError logs err and writes the matching [models.ErrorResponse].
// Internal errors are masked with a generic message so that storage
// details never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	kind := kindFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
		log.Err(err).Msg("internal error")
	} else {
		log.Err(err).Str("kind", kind).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, status)
}
