// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/agro-pest-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists community member accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// PestRepository persists the shared pest catalogue.
type PestRepository interface {
	CreatePest(ctx context.Context, pest models.Pest) (int64, error)
	ListPests(ctx context.Context) ([]models.Pest, error)
}

// DisinfestationRepository persists per-user pesticide application records.
type DisinfestationRepository interface {
	CreateDisinfestation(ctx context.Context, record models.DisinfestationRecord, pestName string) (int64, error)
	ListUserDisinfestations(ctx context.Context, userID string) ([]models.DisinfestationRecord, error)
}
