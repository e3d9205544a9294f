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

// pestRepository is the SQL implementation of [PestRepository] over tb_pest.
type pestRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPestRepository constructs a [PestRepository] backed by db.
func NewPestRepository(db *DB, logger *logger.Logger) PestRepository {
	logger.Debug().Msg("creating pest repository")
	return &pestRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePest registers pest and returns its pest_idx.
//
// The existence check and the INSERT share one transaction. The UNIQUE
// constraint on pest_name is the final arbiter: a violation raised by a
// concurrent insert is reported as [ErrPestAlreadyExists] too.
func (r *pestRepository) CreatePest(ctx context.Context, pest models.Pest) (int64, error) {
	log := logger.FromContext(ctx)

	var pestIdx int64
	err := r.db.Executor().WithinTx(ctx, func(tx *Executor) error {
		_, err := tx.FetchOne(ctx, selectPestIdxByNameQuery(tx.Builder(), pest.PestName))
		switch {
		case err == nil:
			log.Info().
				Str("func", "*pestRepository.CreatePest").
				Str("pest_name", pest.PestName).
				Msg("pest is already registered")
			return ErrPestAlreadyExists
		case !errors.Is(err, ErrRowNotFound):
			return err
		}

		res, err := tx.Insert(ctx, insertPestQuery(tx.Builder(), pest), pestIdxColumn)
		if err != nil {
			if tx.ErrorClassificator().IsUniqueViolation(err) {
				log.Info().
					Str("func", "*pestRepository.CreatePest").
					Str("pest_name", pest.PestName).
					Msg("pest was registered concurrently")
				return ErrPestAlreadyExists
			}
			return err
		}

		pestIdx = res.LastRowID
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "*pestRepository.CreatePest").
		Int64("pest_idx", pestIdx).
		Msg("pest created")
	return pestIdx, nil
}

// ListPests returns the whole catalogue ordered by pest_name.
func (r *pestRepository) ListPests(ctx context.Context) ([]models.Pest, error) {
	rows, err := r.db.Executor().FetchAll(ctx, selectAllPestsQuery(r.db.dialect.Builder()))
	if err != nil {
		return nil, err
	}

	pests := make([]models.Pest, 0, len(rows))
	for _, row := range rows {
		pest, err := pestFromRow(row)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*pestRepository.ListPests").Msg("failed to map row")
			return nil, err
		}
		pests = append(pests, pest)
	}

	return pests, nil
}

func pestFromRow(row Row) (models.Pest, error) {
	pestIdx, err := row.Int64("pest_idx")
	if err != nil {
		return models.Pest{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	createdAt, err := row.Time("created_at")
	if err != nil {
		return models.Pest{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.Pest{
		PestIdx:         pestIdx,
		PestName:        row.String("pest_name"),
		PestDescription: row.String("pest_description"),
		SolutionInfo:    row.String("solution_info"),
		CreatedAt:       createdAt,
	}, nil
}
