package models

// ErrorResponse is the JSON body returned for every failed request.
// Kind is a stable machine-readable error class; Message is a short
// human-readable description carrying no internal detail.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Stable error kinds exposed to clients.
const (
	KindValidation         = "validation"
	KindUnauthenticated    = "unauthenticated"
	KindNotFound           = "not_found"
	KindDuplicateLogin     = "duplicate_login"
	KindInvalidCredentials = "invalid_credentials"
	KindConflict           = "conflict"
	KindTransient          = "transient"
	KindInternal           = "internal"
)
