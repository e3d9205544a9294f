// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of every supported database dialect
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// dialects maps database/sql driver names to goose dialects and to the
// directory holding their migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":      {goose: "pgx", dir: "postgres"},
	"postgres": {goose: "postgres", dir: "postgres"},
	"mysql":    {goose: "mysql", dir: "mysql"},
	"sqlite3":  {goose: "sqlite3", dir: "sqlite3"},
	"sqlite":   {goose: "sqlite3", dir: "sqlite3"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
