// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator recognises integrity constraint violations in driver
// errors so repositories can map them to domain sentinels.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}

// MySQL server error numbers.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlErrDupEntry          = 1062
	mysqlErrNoReferencedRow   = 1452
	mysqlErrNoReferencedRowV1 = 1216
)

type postgresErrorClassificator struct{}

func (postgresErrorClassificator) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func (postgresErrorClassificator) IsForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation
}

// postgresError returns the SQLSTATE code of err, or "" if err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

type mysqlErrorClassificator struct{}

func (mysqlErrorClassificator) IsUniqueViolation(err error) bool {
	return mysqlErrorNumber(err) == mysqlErrDupEntry
}

func (mysqlErrorClassificator) IsForeignKeyViolation(err error) bool {
	n := mysqlErrorNumber(err)
	return n == mysqlErrNoReferencedRow || n == mysqlErrNoReferencedRowV1
}

func mysqlErrorNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}

	return 0
}
