// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/models"
)

type disinfestationService struct {
	disinfestationRepository store.DisinfestationRepository

	logger *logger.Logger
}

func NewDisinfestationService(disinfestationRepository store.DisinfestationRepository, logger *logger.Logger) DisinfestationService {
	return &disinfestationService{
		disinfestationRepository: disinfestationRepository,
		logger:                   logger,
	}
}

// CreateDisinfestation stores a treatment performed by userID and returns
// its disf_idx. The pest is referenced by name; an unknown name is reported
// as a [PublicError] around store.ErrPestNotFound.
func (d *disinfestationService) CreateDisinfestation(ctx context.Context, userID string, req models.DisinfestationCreateRequest) (int64, error) {
	if userID == "" {
		logger.FromContext(ctx).Error().Str("func", "*disinfestationService.CreateDisinfestation").Msg("no user id given")
		return 0, ErrInvalidDataProvided
	}

	record := models.DisinfestationRecord{
		UserID:       userID,
		DisfAt:       req.DisfAt.Time,
		ChemicalName: req.ChemicalName,
		Dosage:       req.Dosage,
		DisfMemo:     req.DisfMemo,
	}

	disfIdx, err := d.disinfestationRepository.CreateDisinfestation(ctx, record, req.PestName)
	if errors.Is(err, store.ErrPestNotFound) {
		return 0, NewPublicError(err, "pest '%s' was not found; register it first", req.PestName)
	}

	return disfIdx, err
}

func (d *disinfestationService) ListUserDisinfestations(ctx context.Context, userID string) ([]models.DisinfestationRecord, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}
	return d.disinfestationRepository.ListUserDisinfestations(ctx, userID)
}
