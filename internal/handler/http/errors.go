package http

import "errors"

// Sentinel errors used by the authorization guard when parsing the
// "Authorization" HTTP header. Callers can match against them with
// [errors.Is]. All of them describe a present-but-malformed header; an
// absent header is handled separately and is an authentication failure, not
// a malformed request.
var (
	// ErrUnsupportedAuthScheme is returned when the header's scheme word is
	// anything other than "Bearer".
	ErrUnsupportedAuthScheme = errors.New("unsupported authorization scheme")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token (i.e. the token value
	// is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
