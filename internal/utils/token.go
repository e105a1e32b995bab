package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token. 32 bytes gives a
// 256-bit token, far beyond any practical guessing attack.
const sessionTokenBytes = 32

// GenerateSessionToken returns a new opaque session token: 32 bytes of
// cryptographically secure randomness, base64url-encoded without padding
// so it is safe to place into a cookie value.
//
// Returns an error only if the operating system's entropy source fails.
func GenerateSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
