// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// DefaultTokenSignKey is used when no sign key is configured.
// It is only suitable for local development.
const DefaultTokenSignKey = "insecure-dev-token-sign-key"

const (
	defaultTokenDuration   = 30 * time.Minute
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultPoolRecycle     = time.Hour
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultLogLevel        = "debug"
	defaultSQLiteDSN       = "file:agro-pest.db?_foreign_keys=on"
)

// applyDefaults fills every zero-valued setting that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
		cfg.usesDefaultTokenSignKey = true
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	db := &cfg.Storage.DB
	if db.Driver == "" {
		db.Driver = DriverPostgres
	}
	if db.PoolRecycle == 0 {
		db.PoolRecycle = defaultPoolRecycle
	}
	if db.MaxOpenConns == 0 {
		db.MaxOpenConns = defaultMaxOpenConns
	}
	if db.MaxIdleConns == 0 {
		db.MaxIdleConns = defaultMaxIdleConns
	}

	switch db.Driver {
	case DriverPostgres, DriverMySQL:
		if db.DSN == "" && db.Host == "" {
			db.Host = "localhost"
		}
		if db.Port == 0 {
			db.Port = 5432
			if db.Driver == DriverMySQL {
				db.Port = 3306
			}
		}
	case DriverSQLite:
		if db.DSN == "" {
			db.DSN = defaultSQLiteDSN
		}
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive, got %s", ErrInvalidAppConfigs, cfg.App.TokenDuration)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d, got %d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost, cfg.App.PasswordHashCost)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	db := cfg.Storage.DB
	switch db.Driver {
	case DriverPostgres, DriverMySQL:
		if db.DSN == "" && db.Name == "" {
			return fmt.Errorf("%w: either a DSN or a database name is required for %s", ErrInvalidStorageConfigs, db.Driver)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool sizes must not be negative", ErrInvalidStorageConfigs)
	}

	return nil
}
