// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from password.
//
// A fresh random salt is generated on every call, so hashing the same
// password twice yields two different strings that both verify.
// cost values below [bcrypt.MinCost] (including 0) fall back to
// [bcrypt.DefaultCost].
//
// Returns an error when cost exceeds [bcrypt.MaxCost] or the password is
// longer than 72 bytes.
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether plain matches the bcrypt hash.
//
// The salt and cost are read from hash itself and the comparison runs in
// constant time. A malformed or empty hash simply yields false.
func CheckPassword(plain, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
