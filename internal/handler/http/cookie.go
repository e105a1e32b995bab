package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const sessionCookieName = "session_token"

// setSessionCookie attaches the session token to the response. The cookie
// is HTTP-only and strict same-site so that scripts and cross-site
// requests never see the token.
func setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie overwrites the session cookie with an expired empty
// value so that browsers drop it immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
