package store

import (
	"context"

	"github.com/DvEyZ/rkblog-be/internal/config"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/migrations"
)

// Storages aggregates all repositories backed by the shared database
// connection.
type Storages struct {
	AccountRepository AccountRepository
	PostRepository    PostRepository
}

// NewStorages connects to the database, applies pending migrations, and
// wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
	}, nil
}
