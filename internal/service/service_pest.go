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

type pestService struct {
	pestRepository store.PestRepository

	logger *logger.Logger
}

func NewPestService(pestRepository store.PestRepository, logger *logger.Logger) PestService {
	return &pestService{
		pestRepository: pestRepository,
		logger:         logger,
	}
}

// CreatePest registers a new catalogue entry and returns its pest_idx.
// A duplicate name is reported as a [PublicError] around
// store.ErrPestAlreadyExists.
func (p *pestService) CreatePest(ctx context.Context, req models.PestCreateRequest) (int64, error) {
	pestIdx, err := p.pestRepository.CreatePest(ctx, models.Pest{
		PestName:        req.PestName,
		PestDescription: req.PestDescription,
		SolutionInfo:    req.SolutionInfo,
	})
	if errors.Is(err, store.ErrPestAlreadyExists) {
		return 0, NewPublicError(err, "pest '%s' is already registered", req.PestName)
	}

	return pestIdx, err
}

func (p *pestService) ListPests(ctx context.Context) ([]models.Pest, error) {
	return p.pestRepository.ListPests(ctx)
}
