package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided. Without it the service can neither issue nor verify tokens.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingPasswordHashKey indicates that no password hash key was
	// provided. Without it stored password digests cannot be verified.
	ErrMissingPasswordHashKey = errors.New("password hash key is not configured")
	// ErrMissingDSN indicates that no database connection string was provided.
	ErrMissingDSN = errors.New("database DSN is not configured")
	// ErrMissingServerAddress indicates that no HTTP listen address was
	// provided.
	ErrMissingServerAddress = errors.New("server address is not configured")
)
