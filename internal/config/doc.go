// Package config loads and validates the application configuration.
//
// Values are merged from environment variables, command-line flags, an
// optional JSON file, and built-in defaults, in that priority order.
// See GetStructuredConfig for the entry point.
package config
