package service

import (
	"fmt"
	"strings"
)

// Credential policy limits. Logins shorter than MinimalLoginLength or
// containing ForbiddenLoginCharacters are rejected, as are passwords
// shorter than MinimalPasswordLength or longer than MaximalPasswordLength.
const (
	MinimalLoginLength    = 3
	MinimalPasswordLength = 5

	// MaximalPasswordLength is bcrypt's hard input limit. Anything longer
	// must be rejected here so that hashing never fails on user input.
	MaximalPasswordLength = 72

	// ForbiddenLoginCharacters would break headers, markup, or path
	// segments if allowed into a login. The last rune is the zero-width
	// space.
	ForbiddenLoginCharacters = "|<>\"'`\\/​"
)

// validateLogin checks the login against the account policy.
// Returns nil when the login is acceptable.
func validateLogin(login string) error {
	if len(login) < MinimalLoginLength {
		return fmt.Errorf("%w: login is too short", ErrValidation)
	}

	if i := strings.IndexAny(login, ForbiddenLoginCharacters); i >= 0 {
		return fmt.Errorf("%w: login contains a forbidden character", ErrValidation)
	}

	return nil
}

// validatePassword checks the password against the credential policy.
// Returns nil when the password is acceptable.
func validatePassword(password string) error {
	if len(password) < MinimalPasswordLength {
		return fmt.Errorf("%w: password is too short", ErrWeakCredential)
	}

	if len(password) > MaximalPasswordLength {
		return fmt.Errorf("%w: password is too long", ErrWeakCredential)
	}

	return nil
}
