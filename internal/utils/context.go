// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/agro-pest-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated subject
	// (tb_user.user_id) in the context.
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey is the key used to store the full decoded claim set of
	// the access token in the context.
	ClaimsCtxKey = contextKey("claims")
)

// WithAuthenticatedUser returns a copy of ctx carrying the verified claims
// and their subject.
func WithAuthenticatedUser(ctx context.Context, claims models.Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
	return context.WithValue(ctx, UserIDCtxKey, claims.Subject())
}

// GetUserIDFromContext retrieves the authenticated subject from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true: value is found, has the string type and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetClaimsFromContext retrieves the verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
