package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, replacement and
// deletion against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new account record and returns the canonical database
// representation via a RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountNameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.ID, account.Name, account.PasswordHash, account.Permissions, account.Bio)

	var created models.Account
	if err := row.Scan(&created.ID, &created.Name, &created.PasswordHash, &created.Permissions, &created.Bio); err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountNameTaken
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByName retrieves the account whose display name matches name.
// An empty result set maps to [ErrAccountNotFound].
func (r *accountRepository) FindByName(ctx context.Context, name string) (models.Account, error) {
	return r.findOne(ctx, findAccountByName, name)
}

// FindByID retrieves the account with the given stable identifier.
// An empty result set maps to [ErrAccountNotFound].
func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, findAccountByID, id)
}

func (r *accountRepository) findOne(ctx context.Context, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&account.ID, &account.Name, &account.PasswordHash, &account.Permissions, &account.Bio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// List returns all accounts ordered by name.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAccounts)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("error: query error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.PasswordHash, &account.Permissions, &account.Bio); err != nil {
			log.Err(err).Str("func", "*accountRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// Replace overwrites the record identified by account.ID.
//
// Error handling:
//   - no matching row → [ErrAccountNotFound];
//   - unique_violation on the new name → [ErrAccountNameTaken].
func (r *accountRepository) Replace(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, replaceAccount, account.ID, account.Name, account.PasswordHash, account.Permissions, account.Bio)

	var replaced models.Account
	if err := row.Scan(&replaced.ID, &replaced.Name, &replaced.PasswordHash, &replaced.Permissions, &replaced.Bio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.Replace").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountNameTaken
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return replaced, nil
}

// Delete removes the account with the given identifier. Deleting a missing
// account maps to [ErrAccountNotFound].
func (r *accountRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccount, id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error: exec error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
