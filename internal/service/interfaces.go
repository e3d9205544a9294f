// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/agro-pest-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and manages access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// PestService manages the shared pest catalogue.
type PestService interface {
	CreatePest(ctx context.Context, req models.PestCreateRequest) (int64, error)
	ListPests(ctx context.Context) ([]models.Pest, error)
}

// DisinfestationService manages per-user disinfestation records.
type DisinfestationService interface {
	CreateDisinfestation(ctx context.Context, userID string, req models.DisinfestationCreateRequest) (int64, error)
	ListUserDisinfestations(ctx context.Context, userID string) ([]models.DisinfestationRecord, error)
}

// AppInfoService exposes build information and the liveness payload.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStatus(ctx context.Context) models.StatusResponse
}
