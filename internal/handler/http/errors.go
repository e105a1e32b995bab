// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware and the URL
// parameter helpers. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request does not carry a session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionToken is returned when the session cookie is present
	// but its value is an empty string.
	ErrEmptySessionToken = errors.New("empty session token in cookie")

	// ErrInvalidURLParameter is returned when a numeric URL parameter such
	// as a todo or group identifier cannot be parsed.
	ErrInvalidURLParameter = errors.New("invalid URL parameter")
)
