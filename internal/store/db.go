// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/migrations"
)

// DB owns the process-wide connection pool together with the dialect it
// was opened with.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already opened pool. It is mainly used by tests that
// substitute sqlmock connections.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}
}

// NewConnectDB opens a pool for cfg.Driver, applies the pool limits and
// pings the database.
//
// The pool keeps at most cfg.MaxOpenConns connections, cfg.MaxIdleConns of
// them idle, and recycles every connection after cfg.PoolRecycle.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("unknown database driver")
		return nil, err
	}

	dsn, err := buildDSN(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error building database DSN")
		return nil, err
	}

	conn, err := sql.Open(dialect.Name, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.PoolRecycle)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().
		Str("func", "NewConnectDB").
		Str("driver", dialect.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Dur("pool_recycle", cfg.PoolRecycle).
		Msg("connected to database successfully")

	return NewDB(conn, dialect, log), nil
}

// Dialect returns the dialect the pool was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Executor returns a data access executor bound to the pool.
func (db *DB) Executor() *Executor {
	return &Executor{
		q:       db.DB,
		db:      db.DB,
		dialect: db.dialect,
	}
}

// Migrate creates the schema for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

// buildDSN returns cfg.DSN when set, otherwise assembles one from the
// individual connection fields in the format expected by cfg.Driver.
func buildDSN(cfg config.DB) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "postgres":
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:   "/" + cfg.Name,
		}
		return u.String(), nil

	case config.DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		if cfg.DSN != "" {
			parsed, err := mysql.ParseDSN(cfg.DSN)
			if err != nil {
				return "", fmt.Errorf("invalid mysql DSN: %w", err)
			}
			mysqlCfg = parsed
		} else {
			mysqlCfg.User = cfg.User
			mysqlCfg.Passwd = cfg.Password
			mysqlCfg.Net = "tcp"
			mysqlCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
			mysqlCfg.DBName = cfg.Name
		}
		// DATETIME columns are scanned into time.Time in UTC.
		mysqlCfg.ParseTime = true
		mysqlCfg.Loc = time.UTC
		return mysqlCfg.FormatDSN(), nil

	case config.DriverSQLite, "sqlite":
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		return cfg.Name, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
