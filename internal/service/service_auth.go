// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/internal/utils"
	"github.com/MKhiriev/agro-pest-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor applied to new password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for token expiry. Replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The plain password is replaced by its bcrypt hash before the user is
// handed to the UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if UserID or Password is empty.
//   - a [PublicError] wrapping store.ErrUserAlreadyExists if the user_id is taken.
//   - a wrapped hashing or storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.Password == "" {
		log.Error().Str("user_id", req.UserID).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user := models.User{
		UserID:     req.UserID,
		Password:   hash,
		Nick:       req.Nick,
		FarmRegion: req.FarmRegion,
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("user_id", req.UserID).Msg("user_id is already taken")
			return models.User{}, NewPublicError(err, "user '%s' is already registered", req.UserID)
		}
		log.Err(err).Str("user_id", req.UserID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// wrongCredentialsMessage is shown for both an unknown user_id and a wrong
// password.
const wrongCredentialsMessage = "incorrect user_id or password"

// Login authenticates an existing user.
//
// An unknown user_id and a wrong password both yield ErrWrongPassword, so the
// caller cannot tell which of the two was wrong.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.Password == "" {
		log.Error().Str("user_id", req.UserID).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("user_id", req.UserID).Msg("login attempt for unknown user")
			return models.User{}, NewPublicError(fmt.Errorf("%w: %w", ErrWrongPassword, err), wrongCredentialsMessage)
		}
		log.Err(err).Str("user_id", req.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.Password) {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, NewPublicError(ErrWrongPassword, wrongCredentialsMessage)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user's id as the "sub" claim and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	claims := models.Claims{"sub": user.UserID}

	token, err := utils.GenerateJWTToken(claims, a.now().Add(a.tokenDuration), a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, forged, malformed, missing subject) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return nil, ErrTokenIsExpiredOrInvalid
	}

	if claims.Subject() == "" {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}
