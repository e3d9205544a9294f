// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agro-pest-api/internal/config"
)

// Dialect captures the per-driver differences the data access layer has to
// care about: placeholder style, how inserted ids are read back, and how
// constraint violations are recognised.
type Dialect struct {
	// Name is the database/sql driver name passed to sql.Open.
	Name string

	placeholder       sq.PlaceholderFormat
	supportsReturning bool
	classificator     ErrorClassificator
}

// Builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// ErrorClassificator returns the constraint-violation classifier of the dialect.
func (d Dialect) ErrorClassificator() ErrorClassificator {
	return d.classificator
}

var (
	// PostgresDialect renders $n placeholders and reads ids via RETURNING.
	PostgresDialect = Dialect{
		Name:              config.DriverPostgres,
		placeholder:       sq.Dollar,
		supportsReturning: true,
		classificator:     postgresErrorClassificator{},
	}

	// MySQLDialect renders ? placeholders and reads ids via LastInsertId.
	MySQLDialect = Dialect{
		Name:          config.DriverMySQL,
		placeholder:   sq.Question,
		classificator: mysqlErrorClassificator{},
	}

	// SQLiteDialect renders ? placeholders and reads ids via LastInsertId.
	SQLiteDialect = Dialect{
		Name:          config.DriverSQLite,
		placeholder:   sq.Question,
		classificator: sqliteErrorClassificator{},
	}
)

// DialectFor returns the [Dialect] registered for driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres, "postgres":
		return PostgresDialect, nil
	case config.DriverMySQL:
		return MySQLDialect, nil
	case config.DriverSQLite, "sqlite":
		return SQLiteDialect, nil
	default:
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
