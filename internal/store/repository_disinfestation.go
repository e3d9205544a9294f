// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/models"
)

// disinfestationRepository is the SQL implementation of
// [DisinfestationRepository] over tb_disinfestation.
type disinfestationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDisinfestationRepository constructs a [DisinfestationRepository]
// backed by db.
func NewDisinfestationRepository(db *DB, logger *logger.Logger) DisinfestationRepository {
	logger.Debug().Msg("creating disinfestation repository")
	return &disinfestationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDisinfestation resolves pestName to a pest_idx and stores record
// with it, both inside one transaction. record.PestIdx is ignored.
//
// Returns [ErrPestNotFound] when no pest has that name; nothing is inserted
// in that case.
func (r *disinfestationRepository) CreateDisinfestation(ctx context.Context, record models.DisinfestationRecord, pestName string) (int64, error) {
	log := logger.FromContext(ctx)

	var disfIdx int64
	err := r.db.Executor().WithinTx(ctx, func(tx *Executor) error {
		row, err := tx.FetchOne(ctx, selectPestIdxByNameQuery(tx.Builder(), pestName))
		if err != nil {
			if errors.Is(err, ErrRowNotFound) {
				log.Info().
					Str("func", "*disinfestationRepository.CreateDisinfestation").
					Str("pest_name", pestName).
					Msg("referenced pest is not registered")
				return ErrPestNotFound
			}
			return err
		}

		if record.PestIdx, err = row.Int64(pestIdxColumn); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		res, err := tx.Insert(ctx, insertDisinfestationQuery(tx.Builder(), record), disfIdxColumn)
		if err != nil {
			if tx.ErrorClassificator().IsForeignKeyViolation(err) {
				return ErrPestNotFound
			}
			return err
		}

		disfIdx = res.LastRowID
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "*disinfestationRepository.CreateDisinfestation").
		Str("user_id", record.UserID).
		Int64("disf_idx", disfIdx).
		Msg("disinfestation record created")
	return disfIdx, nil
}

// ListUserDisinfestations returns the records owned by userID, newest
// treatment first.
func (r *disinfestationRepository) ListUserDisinfestations(ctx context.Context, userID string) ([]models.DisinfestationRecord, error) {
	rows, err := r.db.Executor().FetchAll(ctx, selectUserDisinfestationsQuery(r.db.dialect.Builder(), userID))
	if err != nil {
		return nil, err
	}

	records := make([]models.DisinfestationRecord, 0, len(rows))
	for _, row := range rows {
		record, err := disinfestationFromRow(row)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*disinfestationRepository.ListUserDisinfestations").
				Str("user_id", userID).
				Msg("failed to map row")
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func disinfestationFromRow(row Row) (models.DisinfestationRecord, error) {
	var (
		record models.DisinfestationRecord
		err    error
	)

	if record.DisfIdx, err = row.Int64("disf_idx"); err != nil {
		return models.DisinfestationRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if record.PestIdx, err = row.Int64("pest_idx"); err != nil {
		return models.DisinfestationRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if record.DisfAt, err = row.Time("disf_at"); err != nil {
		return models.DisinfestationRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if record.CreatedAt, err = row.Time("created_at"); err != nil {
		return models.DisinfestationRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	record.UserID = row.String("user_id")
	record.ChemicalName = row.String("chemical_name")
	record.Dosage = row.String("dosage")
	record.DisfMemo = row.String("disf_memo")

	return record, nil
}
