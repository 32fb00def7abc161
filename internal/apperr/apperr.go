// Package apperr defines the uniform error shape threaded through every
// fallible call in the service: a kind discriminant that fixes the semantic
// tier of the failure plus a short human-readable message safe to show to
// clients. Infrastructure details ride along in a wrapped cause that is
// logged but never echoed outward.
package apperr

import "errors"

// Kind classifies a failure into one of the semantic tiers the HTTP layer
// maps onto status codes.
type Kind int

const (
	// KindUnknown marks an error that did not originate from this package.
	KindUnknown Kind = iota

	// KindMalformed — the client sent structurally invalid credentials or
	// payload (400).
	KindMalformed

	// KindUnauthenticated — no or stale credentials; the client should
	// (re-)authenticate (401).
	KindUnauthenticated

	// KindForbidden — credentials are valid but the caller lacks privilege
	// or fails the ownership check (403).
	KindForbidden

	// KindNotFound — the referenced account or resource is absent (404).
	KindNotFound

	// KindConflict — a uniqueness constraint was violated on create (409).
	KindConflict

	// KindServerFault — signing, store or configuration failure (500).
	KindServerFault
)

// Error is the single error type returned by service-layer operations.
type Error struct {
	// Kind is the semantic tier of the failure.
	Kind Kind

	// Message is a short human-readable description, safe for clients.
	Message string

	// Err is the underlying cause, if any. Logged, never sent to clients.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error with the given kind and client-visible message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an Error that carries an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err. Errors that are not (and do not wrap)
// an *Error report KindUnknown; callers should treat that as a server fault.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf extracts the client-visible message from err, or an empty string
// if err is not an *Error.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
