package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt hash of the given plaintext
// password. bcrypt embeds a per-record random salt into the returned
// hash, so two hashes of the same password never compare equal as strings.
//
// Returns the encoded hash or an error if the password exceeds bcrypt's
// 72-byte limit or hashing fails.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword verifies the plaintext password against a stored bcrypt
// hash. The comparison inside bcrypt is constant-time with respect to the
// derived digests.
//
// Returns true only when the password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
