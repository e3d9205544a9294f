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

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against tb_user.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account. user.Password must already hold the
// bcrypt hash; joined_at is set by the database.
//
// Error handling:
//   - unique violation on user_id → [ErrUserAlreadyExists].
//   - any other driver-level error → returned wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	ex := r.db.Executor()
	query, args, err := insertUserQuery(ex.Builder(), user).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if ex.ErrorClassificator().IsUniqueViolation(err) {
			log.Info().Str("func", "*userRepository.CreateUser").Str("user_id", user.UserID).Msg("user_id is taken")
			return ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindUserByID retrieves the account whose user_id matches.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	ex := r.db.Executor()
	row, err := ex.FetchOne(ctx, selectUserByIDQuery(ex.Builder(), userID))
	if err != nil {
		if errors.Is(err, ErrRowNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	joinedAt, err := row.Time("joined_at")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to map row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.User{
		UserID:     row.String("user_id"),
		Password:   row.String("pwd"),
		Nick:       row.String("nick"),
		FarmRegion: row.String("farm_region"),
		JoinedAt:   joinedAt,
	}, nil
}
