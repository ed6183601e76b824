package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/migrations"
)

// DB wraps the process-wide *sql.DB handle together with the engine
// specifics needed by repositories. It is created once in main and passed
// explicitly to every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme (see [ParseDSN]).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error parsing DSN")
		return nil, err
	}

	switch dialect.Name {
	case Postgres.Name:
		return NewConnectPostgres(ctx, dsn, log)
	case MySQL.Name:
		return NewConnectMySQL(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// Dialect returns the engine the handle is connected to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate creates the schema objects that are missing.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

// WithTx runs fn inside a transaction. The transaction is committed only if
// fn returns nil and is rolled back on every other exit path, including a
// panic inside fn.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful Commit
	defer func() { _ = tx.Rollback() }()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// classify returns the engine-specific classification of err.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
