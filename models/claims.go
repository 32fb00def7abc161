package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set carried inside a bearer token. It is a
// point-in-time snapshot of the account identity taken at issuance; it is not
// re-validated against the live credential store on later requests, so
// permission changes and deletions only take effect once the token expires.
//
// The wire body is exactly {exp, _id, name, permissions} — no registered
// claims beyond exp are emitted.
type AccessClaims struct {
	// ExpiresAt is the absolute expiry time in seconds since the Unix epoch.
	ExpiresAt int64 `json:"exp"`

	// AccountID is the stable identifier of the account the token was
	// issued for.
	AccountID string `json:"_id"`

	// Name is the account's display name at issuance time. Ownership checks
	// compare against this value.
	Name string `json:"name"`

	// Permissions is the account's authorization tier at issuance time.
	Permissions PermissionLevel `json:"permissions"`
}

// GetExpirationTime implements [jwt.Claims].
func (c AccessClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implements [jwt.Claims]. Issued-at is not part of the claim set.
func (c AccessClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return nil, nil
}

// GetNotBefore implements [jwt.Claims]. Not-before is not part of the claim set.
func (c AccessClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

// GetIssuer implements [jwt.Claims]. Issuer is not part of the claim set.
func (c AccessClaims) GetIssuer() (string, error) {
	return "", nil
}

// GetSubject implements [jwt.Claims]. Subject is not part of the claim set;
// the account identity travels in the _id and name claims instead.
func (c AccessClaims) GetSubject() (string, error) {
	return "", nil
}

// GetAudience implements [jwt.Claims]. Audience is not part of the claim set.
func (c AccessClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
