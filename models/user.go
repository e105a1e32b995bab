package models

import "time"

// User represents an account entity used for authentication and as the
// ownership scope of every Group and Todo.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on creation.
	ID int64 `json:"id"`

	// Login is the unique user login identifier.
	// It is immutable after registration.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch describes a partial update of a user profile.
// Nil fields are left unchanged. Login is deliberately absent:
// it can never be changed after registration.
type UserPatch struct {
	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Password replaces the user's password when non-nil.
	// It is validated against the credential policy and re-hashed;
	// the plaintext is never persisted.
	Password *string `json:"password,omitempty"`
}
