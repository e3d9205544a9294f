// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agro-pest-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned by [GenerateJWTToken] when the sign
	// key is empty or the expiry is unset.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrInvalidToken is returned by [ValidateAndParseJWTToken] for every
	// kind of rejection: bad signature, malformed token, wrong algorithm,
	// missing or elapsed "exp".
	ErrInvalidToken = errors.New("token is invalid or expired")
)

// GenerateJWTToken signs a copy of claims with HMAC-SHA256.
//
// The input map is never mutated. The "exp" claim of the copy is always set
// to expiresAt, overriding any caller-provided value.
//
// Parameters:
//
//	claims    - arbitrary claims to embed, usually {"sub": userID}
//	expiresAt - absolute expiry written to "exp"
//	signKey   - secret key used to sign the token
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.Claims{"sub": "farmer01"}, time.Now().Add(30*time.Minute), "secret")
func GenerateJWTToken(claims models.Claims, expiresAt time.Time, signKey string) (models.Token, error) {
	if signKey == "" || expiresAt.IsZero() {
		return models.Token{}, ErrInvalidTokenParams
	}

	toEncode := claims.Clone()
	toEncode["exp"] = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(toEncode))
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       toEncode,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Signature, algorithm (HS256 only), structure and expiry are checked in a
// single parse; "exp" is mandatory and compared against now. Every failure
// is reported as [ErrInvalidToken] wrapping the parser error, so callers
// cannot (and should not) tell an expired token from a forged one.
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, "secret", time.Now())
//	if err != nil {
//	    // respond 401
//	}
func ValidateAndParseJWTToken(tokenString, signKey string, now time.Time) (models.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return models.Claims(claims), nil
}
