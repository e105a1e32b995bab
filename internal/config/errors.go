package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when no database DSN was provided by
	// any configuration source.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")

	// ErrInvalidGroupDeletePolicy is returned when the configured group
	// delete policy is neither "detach" nor "cascade".
	ErrInvalidGroupDeletePolicy = errors.New("invalid group delete policy")

	// ErrInvalidSessionDuration is returned when the session lifetime is
	// zero or negative.
	ErrInvalidSessionDuration = errors.New("invalid session duration")
)
