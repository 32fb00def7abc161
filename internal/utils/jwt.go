package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/DvEyZ/rkblog-be/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors reported by token validation. Callers match them with
// [errors.Is] to separate the re-authenticate case from outright rejection.
var (
	// ErrTokenExpired is returned when the token's signature verifies but
	// its exp claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned when the token cannot be decoded, its
	// signature does not verify, or a required claim is missing.
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateAccessToken creates a signed HMAC-SHA256 JWT for the given account.
//
// The claim body carries exactly:
//   - exp          — absolute expiry, now plus tokenDuration, in Unix seconds
//   - _id          — the account's stable identifier
//   - name         — the account's display name
//   - permissions  — the account's permission level
//
// The claim set is a snapshot: later changes to the account do not affect
// already-issued tokens.
//
// Returns an error if tokenDuration is zero, signKey is empty, or signing
// fails.
func GenerateAccessToken(account models.Account, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating access token")
	}

	claims := models.AccessClaims{
		ExpiresAt:   time.Now().Add(tokenDuration).Unix(),
		AccountID:   account.ID,
		Name:        account.Name,
		Permissions: account.Permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseAccessToken verifies the signature of tokenString against
// signKey and extracts its claim set.
//
// The signature is verified before any claim is inspected, so a tampered
// token is rejected as invalid even if its exp claim is in the past. Only
// HS256 tokens are accepted, and the exp claim is mandatory.
//
// Returns:
//   - the decoded claims on success;
//   - ErrTokenExpired (wrapped) when the signature verifies but the token
//     has expired;
//   - ErrTokenInvalid (wrapped) for every other validation failure.
func ValidateAndParseAccessToken(tokenString, signKey string) (models.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AccessClaims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.AccessClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok {
		return models.AccessClaims{}, fmt.Errorf("%w: unexpected claims type", ErrTokenInvalid)
	}

	return *claims, nil
}
