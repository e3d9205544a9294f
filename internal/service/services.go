// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/internal/validators"
)

type Services struct {
	AuthService           AuthService
	PestService           PestService
	DisinfestationService DisinfestationService
	AppInfoService        AppInfoService
}

// NewServices builds every service over storages. Request validation is
// layered on top of the domain services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		PestService: NewPestValidationService(validator).
			Wrap(NewPestService(storages.PestRepository, logger)),
		DisinfestationService: NewDisinfestationValidationService(validator).
			Wrap(NewDisinfestationService(storages.DisinfestationRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
