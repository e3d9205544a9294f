// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/agro-pest-api/internal/validators"
	"github.com/MKhiriev/agro-pest-api/models"
)

// PestValidationService checks request bodies before they reach the wrapped
// PestService.
type PestValidationService struct {
	inner     PestService
	validator validators.Validator
}

func NewPestValidationService(validator validators.Validator) PestServiceWrapper {
	return &PestValidationService{validator: validator}
}

func (v *PestValidationService) CreatePest(ctx context.Context, req models.PestCreateRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, err
	}
	return v.inner.CreatePest(ctx, req)
}

func (v *PestValidationService) ListPests(ctx context.Context) ([]models.Pest, error) {
	return v.inner.ListPests(ctx)
}

func (v *PestValidationService) Wrap(wrapped PestService) PestService {
	v.inner = wrapped
	return v
}

// DisinfestationValidationService checks request bodies before they reach
// the wrapped DisinfestationService.
type DisinfestationValidationService struct {
	inner     DisinfestationService
	validator validators.Validator
}

func NewDisinfestationValidationService(validator validators.Validator) DisinfestationServiceWrapper {
	return &DisinfestationValidationService{validator: validator}
}

func (v *DisinfestationValidationService) CreateDisinfestation(ctx context.Context, userID string, req models.DisinfestationCreateRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, err
	}
	return v.inner.CreateDisinfestation(ctx, userID, req)
}

func (v *DisinfestationValidationService) ListUserDisinfestations(ctx context.Context, userID string) ([]models.DisinfestationRecord, error) {
	return v.inner.ListUserDisinfestations(ctx, userID)
}

func (v *DisinfestationValidationService) Wrap(wrapped DisinfestationService) DisinfestationService {
	v.inner = wrapped
	return v
}

// AuthValidationService checks registration and login bodies. Token
// operations pass straight through.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
