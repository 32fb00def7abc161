// Package utils provides general-purpose helper utilities used across the
// application: context keys, password hashing, JSON response writing, HTTP
// client construction, UUID generation, and JWT token generation and
// validation.
package utils

import (
	"context"

	"github.com/DvEyZ/rkblog-be/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages that
// may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the verified caller identity is stored
// in the request context by the authorization guard.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified claim set from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (models.AccessClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.AccessClaims)
	return claims, ok
}
