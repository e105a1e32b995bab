package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, resolves it via
// [service.AuthService.Resolve], and — on success — stores the
// authenticated user's ID under [utils.UserIDCtxKey] and the raw session
// token under [utils.SessionTokenCtxKey] in the request context before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// cookie is absent, empty, unknown, or expired. Storage outages surface
// as HTTP 503 so that clients can retry without discarding their session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			writeError(w, r, ErrNoSessionCookie)
			return
		}
		if cookie.Value == "" {
			log.Err(ErrEmptySessionToken).Send()
			writeError(w, r, ErrEmptySessionToken)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.Resolve(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				log.Err(err).Msg("session rejected")
			case errors.Is(err, store.ErrTransientStorage):
				log.Err(err).Msg("session resolution unavailable")
			default:
				log.Err(err).Msg("error occurred during session resolution")
			}
			writeError(w, r, err)
			return
		}

		// Store the identity in the context so that downstream handlers can
		// retrieve it without touching the session store again.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
