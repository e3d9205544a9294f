// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConstraintError(code sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: code}
}

func TestSQLiteErrorClassificator(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantFK     bool
	}{
		{name: "unique", err: sqliteConstraintError(sqlite3.ErrConstraintUnique), wantUnique: true},
		{name: "primary key", err: sqliteConstraintError(sqlite3.ErrConstraintPrimaryKey), wantUnique: true},
		{name: "wrapped unique", err: fmt.Errorf("%w: %w", ErrExecutingQuery, sqliteConstraintError(sqlite3.ErrConstraintUnique)), wantUnique: true},
		{name: "foreign key", err: sqliteConstraintError(sqlite3.ErrConstraintForeignKey), wantFK: true},
		{name: "not null", err: sqliteConstraintError(sqlite3.ErrConstraintNotNull)},
		{name: "text only", err: errors.New("UNIQUE constraint failed: tb_pest.pest_name")},
		{name: "nil", err: nil},
	}

	lite := SQLiteDialect.ErrorClassificator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnique, lite.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.wantFK, lite.IsForeignKeyViolation(tt.err))
		})
	}
}

// TestSQLiteErrorClassificator_DriverErrors feeds errors produced by a real
// SQLite database through the classifier.
func TestSQLiteErrorClassificator_DriverErrors(t *testing.T) {
	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	conn.SetMaxOpenConns(1)

	ctx := context.Background()
	if err = conn.PingContext(ctx); err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}

	for _, stmt := range []string{
		`CREATE TABLE pest (idx INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
		`CREATE TABLE account (id TEXT PRIMARY KEY)`,
		`CREATE TABLE record (idx INTEGER PRIMARY KEY, pest_idx INTEGER NOT NULL REFERENCES pest(idx))`,
		`INSERT INTO pest (name) VALUES ('탄저병')`,
		`INSERT INTO account (id) VALUES ('farmer01')`,
	} {
		_, err = conn.ExecContext(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	lite := SQLiteDialect.ErrorClassificator()

	_, err = conn.ExecContext(ctx, `INSERT INTO pest (name) VALUES ('탄저병')`)
	require.Error(t, err)
	assert.True(t, lite.IsUniqueViolation(fmt.Errorf("%w: %w", ErrExecutingQuery, err)))
	assert.False(t, lite.IsForeignKeyViolation(err))

	_, err = conn.ExecContext(ctx, `INSERT INTO account (id) VALUES ('farmer01')`)
	require.Error(t, err)
	assert.True(t, lite.IsUniqueViolation(err))

	_, err = conn.ExecContext(ctx, `INSERT INTO record (pest_idx) VALUES (999)`)
	require.Error(t, err)
	assert.True(t, lite.IsForeignKeyViolation(err))
	assert.False(t, lite.IsUniqueViolation(err))
}

func TestCreatePest_SQLiteUniqueViolation(t *testing.T) {
	repo, mock := newTestPestRepo(t, SQLiteDialect)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPestIdxSQL).
		WillReturnRows(sqlmock.NewRows([]string{"pest_idx"}))
	mock.ExpectExec(insertPestSQL).WillReturnError(sqliteConstraintError(sqlite3.ErrConstraintUnique))
	mock.ExpectRollback()

	_, err := repo.CreatePest(context.Background(), anthracnose)
	assert.ErrorIs(t, err, ErrPestAlreadyExists)
}
