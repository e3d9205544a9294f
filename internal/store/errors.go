// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPestAlreadyExists is returned when a pest with the same pest_name is
	// already registered. Both the pre-check and the UNIQUE constraint map to it.
	ErrPestAlreadyExists = errors.New("pest already exists")

	// ErrPestNotFound is returned when a disinfestation record references a
	// pest_name that is not in tb_pest.
	ErrPestNotFound = errors.New("pest was not found")

	// ErrUserAlreadyExists is returned when registration hits an existing
	// user_id.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no tb_user row matches the user_id.
	ErrUserNotFound = errors.New("user was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the executor and repositories when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrRowNotFound is returned by [Executor.FetchOne] when the query yields
	// no rows.
	ErrRowNotFound = errors.New("row not found")

	// ErrBuildingSQLQuery is returned when a squirrel builder cannot render
	// its SQL.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// result iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrReadingInsertID is returned when the identifier of a freshly
	// inserted row cannot be obtained.
	ErrReadingInsertID = errors.New("failed to read inserted row id")

	// ErrColumnNotFound is returned by [Row] accessors for a missing column.
	ErrColumnNotFound = errors.New("column not found in row")

	// ErrUnexpectedColumnType is returned by [Row] accessors when the driver
	// value cannot be converted to the requested type.
	ErrUnexpectedColumnType = errors.New("unexpected column type")

	// ErrUnsupportedDriver is returned by [NewConnectDB] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
