package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DvEyZ/rkblog-be/internal/apperr"
	"github.com/DvEyZ/rkblog-be/internal/config"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/store"
	"github.com/DvEyZ/rkblog-be/internal/utils"
	"github.com/DvEyZ/rkblog-be/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	accountRepository store.AccountRepository
	postRepository    store.PostRepository
	hashKey           string
	uuidGenerator     *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repositories. The post repository is needed for the cascade delete of an
// account's authored posts.
func NewAccountService(accountRepository store.AccountRepository, postRepository store.PostRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		postRepository:    postRepository,
		hashKey:           cfg.PasswordHashKey,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// List returns the brief representation of every account.
func (s *accountService) List(ctx context.Context) ([]models.AccountBrief, error) {
	accounts, err := s.accountRepository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("account listing failed")
		return nil, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	briefs := make([]models.AccountBrief, 0, len(accounts))
	for _, account := range accounts {
		briefs = append(briefs, account.Brief())
	}

	return briefs, nil
}

// Get returns the full read model of the account with the given name.
func (s *accountService) Get(ctx context.Context, name string) (models.AccountRead, error) {
	account, err := s.findByName(ctx, name)
	if err != nil {
		return models.AccountRead{}, err
	}

	return account.Read(), nil
}

// Create registers a new account. The name pre-check is advisory: two
// concurrent creates with the same name are resolved by the store's unique
// constraint at write time, which also maps to a conflict.
func (s *accountService) Create(ctx context.Context, write models.AccountWrite) (models.AccountRead, error) {
	log := logger.FromContext(ctx)

	if err := validateAccountWrite(write); err != nil {
		return models.AccountRead{}, err
	}

	if _, err := s.accountRepository.FindByName(ctx, write.Name); err == nil {
		return models.AccountRead{}, apperr.New(apperr.KindConflict, fmt.Sprintf("Account %s already exists.", write.Name))
	} else if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("name", write.Name).Msg("account pre-check failed")
		return models.AccountRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	account := models.Account{
		ID:           s.uuidGenerator.Generate(),
		Name:         write.Name,
		PasswordHash: utils.HashString(write.Password, s.hashKey),
		Permissions:  write.Permissions,
		Bio:          write.Bio,
	}

	created, err := s.accountRepository.Create(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrAccountNameTaken) {
			return models.AccountRead{}, apperr.Wrap(apperr.KindConflict, fmt.Sprintf("Account %s already exists.", write.Name), err)
		}
		log.Err(err).Str("name", write.Name).Msg("account creation failed")
		return models.AccountRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return created.Read(), nil
}

// Update replaces the account identified by name. Only the account itself or
// an administrator may perform the update; the identifier never changes.
func (s *accountService) Update(ctx context.Context, name string, write models.AccountWrite, caller models.AccessClaims) (models.AccountRead, error) {
	log := logger.FromContext(ctx)

	origin, err := s.findByName(ctx, name)
	if err != nil {
		return models.AccountRead{}, err
	}

	if !CanMutate(origin.Name, caller) {
		return models.AccountRead{}, apperr.New(apperr.KindForbidden, "You don't have permission to modify this resource.")
	}

	if err := validateAccountWrite(write); err != nil {
		return models.AccountRead{}, err
	}

	replacement := models.Account{
		ID:           origin.ID,
		Name:         write.Name,
		PasswordHash: utils.HashString(write.Password, s.hashKey),
		Permissions:  write.Permissions,
		Bio:          write.Bio,
	}

	replaced, err := s.accountRepository.Replace(ctx, replacement)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			return models.AccountRead{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Account %s not found.", name), err)
		case errors.Is(err, store.ErrAccountNameTaken):
			return models.AccountRead{}, apperr.Wrap(apperr.KindConflict, fmt.Sprintf("Account %s already exists.", write.Name), err)
		default:
			log.Err(err).Str("name", name).Msg("account replacement failed")
			return models.AccountRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
		}
	}

	return replaced.Read(), nil
}

// Delete removes the account with the given name and cascades the delete to
// every post it authored. Posts are removed first so the author reference
// never dangles mid-operation.
func (s *accountService) Delete(ctx context.Context, name string) (models.AccountRead, error) {
	log := logger.FromContext(ctx)

	account, err := s.findByName(ctx, name)
	if err != nil {
		return models.AccountRead{}, err
	}

	if err := s.postRepository.DeleteByAuthor(ctx, account.ID); err != nil {
		log.Err(err).Str("name", name).Msg("cascade delete of authored posts failed")
		return models.AccountRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	if err := s.accountRepository.Delete(ctx, account.ID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.AccountRead{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Account %s not found.", name), err)
		}
		log.Err(err).Str("name", name).Msg("account deletion failed")
		return models.AccountRead{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return account.Read(), nil
}

func (s *accountService) findByName(ctx context.Context, name string) (models.Account, error) {
	account, err := s.accountRepository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("Account %s not found.", name), err)
		}
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("account lookup failed")
		return models.Account{}, apperr.Wrap(apperr.KindServerFault, "Internal server error.", err)
	}

	return account, nil
}

func validateAccountWrite(write models.AccountWrite) error {
	if write.Name == "" || write.Password == "" {
		return apperr.New(apperr.KindMalformed, "Name and password are required.")
	}
	if !write.Permissions.Valid() {
		return apperr.New(apperr.KindMalformed, "Unknown permission level.")
	}
	return nil
}
