package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/config"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/store"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
)

// authService is the concrete implementation of AuthService. It verifies
// credentials against the account repository and handles the bearer token
// lifecycle with HMAC-SHA256 signing.
type authService struct {
	// accountRepository is the credential store used to resolve login names.
	accountRepository store.AccountRepository

	// hashKey is the HMAC secret used when hashing passwords before
	// comparison. Must match the value used when the stored hash was written.
	hashKey string

	// tokenSignKey is the secret used to sign and verify tokens. Read-only
	// after construction; safe for unsynchronized concurrent reads.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	// It is also the accepted staleness window of claim snapshots.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given account
// repository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hashKey:           cfg.PasswordHashKey,
		tokenSignKey:      cfg.TokenSignKey,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Token authenticates the supplied credentials and issues a token for the
// matching account.
//
// Returns:
//   - malformed if name or password is empty;
//   - not found if no account holds the given name;
//   - forbidden if the password digest does not match;
//   - server fault on store or signing failure.
func (a *authService) Token(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Name == "" || creds.Password == "" {
		return models.Token{}, apperr.New(apperr.KindMalformed, "Name and password are required.")
	}

	account, err := a.accountRepository.FindByName(ctx, creds.Name)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Token{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Account %s not found.", creds.Name), err)
		}
		log.Err(err).Str("name", creds.Name).Msg("account lookup by name failed")
		return models.Token{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	if !utils.VerifyHash(creds.Password, account.PasswordHash, a.hashKey) {
		log.Warn().Str("name", creds.Name).Msg("wrong password")
		return models.Token{}, apperr.New(apperr.KindForbidden, "Invalid password.")
	}

	return a.CreateToken(ctx, account)
}

// CreateToken issues a signed token for the given account.
//
// The claim set is a snapshot of the account at issuance time: expiry is now
// plus the configured token duration, and identifier, name and permission
// level are copied verbatim. Signing failure is a server fault; it is
// surfaced, never retried.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, apperr.New(apperr.KindServerFault, "Internal server error.")
	}

	token, err := utils.GenerateAccessToken(account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token signing failed")
		return models.Token{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return token, nil
}

// ParseToken verifies a raw token string and returns its claim set.
//
// Outcomes, in the order the checks run:
//   - server fault if the signing secret is not configured;
//   - forbidden if the token cannot be decoded or its signature does not
//     verify (checked before expiry, so tampered tokens are indistinguishable
//     from each other regardless of their exp claim);
//   - unauthenticated if the signature verifies but the token has expired —
//     the caller should re-authenticate.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.AccessClaims, error) {
	if a.tokenSignKey == "" {
		return models.AccessClaims{}, apperr.New(apperr.KindServerFault, "Internal server error.")
	}

	claims, err := utils.ValidateAndParseAccessToken(tokenString, a.tokenSignKey)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.AccessClaims{}, apperr.Wrap(apperr.KindUnauthenticated, "You need to authenticate to access this resource.", err)
		}
		return models.AccessClaims{}, apperr.Wrap(apperr.KindForbidden, "You don't have permission to access this resource.", err)
	}

	return claims, nil
}
