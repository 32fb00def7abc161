package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/service"
	"github.com/DvEyZ/rkblog-be/internal/utils"
)

// bearerScheme is the only authorization scheme the guard accepts.
const bearerScheme = "Bearer"

// authorize returns the request gate for protected endpoints, parameterized
// by the capability policy the endpoint binds.
//
// Checks run in a fixed order, each short-circuiting with a distinct outcome:
//
//  1. Absent "Authorization" header → 401 (missing credentials).
//  2. Header present but not of the form "Bearer <token>" → 400.
//  3. Signing secret unavailable → 500 (operational fault, not the client's).
//  4. Signature does not verify or token is corrupt → 403.
//  5. Signature verifies but token has expired → 401 (re-authenticate).
//  6. Capability policy rejects the claims → 403 (insufficient privilege).
//
// Malformed input is rejected before any cryptographic work, and expiry is
// checked only after signature validity, so tampered tokens are rejected
// uniformly regardless of their exp claim. On success the verified claim set
// is stored in the request context under [utils.ClaimsCtxKey].
//
// Steps 3-5 are delegated to [service.AuthService.ParseToken], which encodes
// each outcome as an apperr kind.
func (h *Handler) authorize(policy service.CapabilityPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.writeError(w, r, apperr.New(apperr.KindUnauthenticated, "You need to authenticate to access this resource."))
				return
			}

			tokenString, err := getTokenFromAuthHeader(authHeader)
			if err != nil {
				log.Err(err).Send()
				h.writeError(w, r, apperr.Wrap(apperr.KindMalformed, "Invalid authorization header.", err))
				return
			}

			ctx := r.Context()
			claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			if !policy(claims) {
				h.writeError(w, r, apperr.New(apperr.KindForbidden, "You don't have permission to access this resource."))
				return
			}

			// Store the verified caller identity in the context so that
			// downstream handlers can retrieve it without re-parsing the token.
			ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrUnsupportedAuthScheme] — the scheme word is not "Bearer".
//   - [ErrInvalidAuthorizationHeader] — no token follows the scheme word.
//   - [ErrEmptyToken] — a separator is present but the token is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if parts[0] != bearerScheme {
		return "", ErrUnsupportedAuthScheme
	}

	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
