// Package store implements the persistence layer: PostgreSQL-backed
// repositories for accounts and posts behind narrow interfaces, with
// sentinel errors for the conditions the service layer needs to distinguish.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DvEyZ/rkblog-be/internal/config"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver
)

// DB wraps the database/sql connection pool together with the logger used
// for connection-level diagnostics.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection pool for the given DSN and
// verifies connectivity with a ping before returning.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

// postgresError returns the PostgreSQL error code carried by err, or an
// empty string when err did not originate from the driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
