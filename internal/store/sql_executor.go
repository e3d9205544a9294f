// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
)

// querier is the subset of *sql.DB and *sql.Tx used by [Executor].
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertResult carries the identifier assigned to a newly inserted row.
type InsertResult struct {
	LastRowID int64
}

// Executor runs squirrel-built statements with bound parameters against
// either the pool or a single transaction. Values are never interpolated
// into SQL text.
//
// All methods honour ctx, so request timeouts cancel in-flight queries.
type Executor struct {
	q       querier
	db      *sql.DB
	dialect Dialect
	inTx    bool
}

// Builder returns a statement builder with the executor's placeholder format.
func (e *Executor) Builder() sq.StatementBuilderType {
	return e.dialect.Builder()
}

// ErrorClassificator returns the classifier matching the executor's dialect.
func (e *Executor) ErrorClassificator() ErrorClassificator {
	return e.dialect.classificator
}

// FetchOne runs q and returns its first row.
// It returns [ErrRowNotFound] when the result set is empty.
func (e *Executor) FetchOne(ctx context.Context, q sq.Sqlizer) (Row, error) {
	rows, err := e.FetchAll(ctx, q)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrRowNotFound
	}

	return rows[0], nil
}

// FetchAll runs q and returns every row keyed by column name.
// An empty result yields an empty, non-nil slice.
func (e *Executor) FetchAll(ctx context.Context, q sq.Sqlizer) ([]Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*Executor.FetchAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*Executor.FetchAll").Str("query", query).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*Executor.FetchAll").Str("query", query).Msg("failed to scan rows")
		return nil, err
	}

	return result, nil
}

// Insert runs q and returns the value of idColumn for the inserted row.
//
// PostgreSQL reads the id through a RETURNING clause, other dialects through
// sql.Result.LastInsertId. Driver errors are returned wrapped in
// [ErrExecutingQuery] so constraint violations can still be classified.
func (e *Executor) Insert(ctx context.Context, q sq.InsertBuilder, idColumn string) (InsertResult, error) {
	log := logger.FromContext(ctx)

	if e.dialect.supportsReturning {
		query, args, err := q.Suffix("RETURNING " + idColumn).ToSql()
		if err != nil {
			log.Err(err).Str("func", "*Executor.Insert").Msg("failed to build query")
			return InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err = e.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			log.Err(err).Str("func", "*Executor.Insert").Str("query", query).Msg("failed to execute insert")
			return InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return InsertResult{LastRowID: id}, nil
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*Executor.Insert").Msg("failed to build query")
		return InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := e.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*Executor.Insert").Str("query", query).Msg("failed to execute insert")
		return InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*Executor.Insert").Msg("failed to read last insert id")
		return InsertResult{}, fmt.Errorf("%w: %w", ErrReadingInsertID, err)
	}

	return InsertResult{LastRowID: id}, nil
}

// WithinTx runs fn with an executor bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction.
func (e *Executor) WithinTx(ctx context.Context, fn func(tx *Executor) error) error {
	if e.inTx {
		return fn(e)
	}

	log := logger.FromContext(ctx)

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*Executor.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*Executor.WithinTx").Msg("failed to roll back transaction")
		}
	}()

	txExecutor := &Executor{
		q:       tx,
		db:      e.db,
		dialect: e.dialect,
		inTx:    true,
	}
	if err = fn(txExecutor); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*Executor.WithinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
