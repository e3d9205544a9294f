// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a community member account stored in tb_user.
// UserID doubles as the login and as the "sub" claim of issued tokens.
type User struct {
	// UserID is the unique login chosen at registration.
	UserID string `json:"user_id"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Nick is the public display name.
	Nick string `json:"nick"`

	// FarmRegion is a free-form region description of the user's farm.
	FarmRegion string `json:"farm_region"`

	// JoinedAt is the registration time set by the store.
	JoinedAt time.Time `json:"joined_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "tb_user"
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	UserID     string `json:"user_id" validate:"required,max=50"`
	Password   string `json:"pwd" validate:"required,max=72"`
	Nick       string `json:"nick" validate:"required,max=50"`
	FarmRegion string `json:"farm_region" validate:"max=100"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"pwd" validate:"required"`
}
