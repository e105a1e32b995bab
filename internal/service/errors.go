package service

import "errors"

// Sentinel errors returned by the service layer. The HTTP handler maps
// them onto the external error taxonomy; callers match with [errors.Is].
var (
	// ErrValidation is returned for malformed or missing input the client
	// should fix before retrying (empty todo text, empty group name, an
	// empty patch, and so on).
	ErrValidation = errors.New("invalid data provided")

	// ErrWeakCredential is returned when a registration or password
	// change fails the minimum credential policy.
	ErrWeakCredential = errors.New("credential does not meet minimum policy")

	// ErrInvalidCredentials is returned on login when the login is
	// unknown or the password does not match. The two cases are
	// deliberately indistinguishable to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid login/password")

	// ErrUnauthenticated is returned when a session token is missing,
	// unknown, expired, or revoked. All four cases map to the same error
	// to avoid leaking session-store internals.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrGroupNotRemovable is returned when deletion targets the default
	// group created at registration.
	ErrGroupNotRemovable = errors.New("this group cannot be deleted")
)
