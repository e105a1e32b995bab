package models

import "time"

// Session binds an opaque token to a user identity for a limited time.
// The token is delivered to the client in an http-only cookie and
// attached by the transport to every subsequent request.
type Session struct {
	// Token is the opaque, cryptographically random session credential.
	// It is never serialized to JSON; it travels only inside the cookie.
	Token string `json:"-"`

	// UserID references the user this session authenticates.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment after which the session no longer
	// resolves, regardless of whether the row still exists.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
