package service

import (
	"context"

	"github.com/DvEyZ/rkblog-be/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	// Token authenticates the supplied credentials against the credential
	// store and issues a signed token for the matching account.
	Token(ctx context.Context, creds models.Credentials) (models.Token, error)

	// CreateToken issues a signed token for an already-resolved account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken verifies the signature and expiry of a raw token string and
	// returns the claim set it carries. The returned error carries an
	// apperr kind: forbidden for rejected tokens, unauthenticated for
	// expired ones, server fault when the secret is unavailable.
	ParseToken(ctx context.Context, tokenString string) (models.AccessClaims, error)
}

// AccountService implements account CRUD with ownership enforcement on
// self-service updates.
type AccountService interface {
	List(ctx context.Context) ([]models.AccountBrief, error)
	Get(ctx context.Context, name string) (models.AccountRead, error)
	Create(ctx context.Context, write models.AccountWrite) (models.AccountRead, error)
	Update(ctx context.Context, name string, write models.AccountWrite, caller models.AccessClaims) (models.AccountRead, error)
	// Delete removes the account and cascades to every post it authored.
	Delete(ctx context.Context, name string) (models.AccountRead, error)
}

// PostService implements post CRUD with ownership enforcement on mutation.
type PostService interface {
	List(ctx context.Context) ([]models.PostBrief, error)
	Get(ctx context.Context, title string) (models.PostRead, error)
	Create(ctx context.Context, write models.PostWrite, caller models.AccessClaims) (models.PostRead, error)
	Update(ctx context.Context, title string, write models.PostWrite, caller models.AccessClaims) (models.PostRead, error)
	Delete(ctx context.Context, title string, caller models.AccessClaims) (models.PostRead, error)
}
