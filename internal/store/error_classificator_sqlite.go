// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

type sqliteErrorClassificator struct{}

// IsUniqueViolation also reports PRIMARY KEY violations: tb_user is keyed
// by user_id.
func (sqliteErrorClassificator) IsUniqueViolation(err error) bool {
	code := sqliteExtendedCode(err)
	return code == sqlite3.ErrConstraintUnique || code == sqlite3.ErrConstraintPrimaryKey
}

func (sqliteErrorClassificator) IsForeignKeyViolation(err error) bool {
	return sqliteExtendedCode(err) == sqlite3.ErrConstraintForeignKey
}

func sqliteExtendedCode(err error) sqlite3.ErrNoExtended {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode
	}

	return 0
}
