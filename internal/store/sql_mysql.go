package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// NewConnectMySQL opens a MySQL connection pool. dsn is in the
// go-sql-driver format ("user:pass@tcp(host:3306)/db?param=value").
func NewConnectMySQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql DSN")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error creating mysql connector")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn := sql.OpenDB(connector)

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Str("addr", mysqlCfg.Addr).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		dialect:            MySQL,
		errorClassificator: NewMySQLErrorClassifier(),
		logger:             log,
	}

	return db, nil
}
