// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Verifies(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt prefix, got %q", hash)
	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
}

// TestHashPassword_Salted checks that two hashes of the same password differ
// and both still verify.
func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("hunter2", h1))
	assert.True(t, CheckPassword("hunter2", h2))
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("x", hash))
}

func TestHashPassword_DefaultCostFallback(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_CostTooHigh(t *testing.T) {
	_, err := HashPassword("pw", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	assert.Error(t, err)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("pw", ""))
	assert.False(t, CheckPassword("pw", "not-a-bcrypt-hash"))
}
