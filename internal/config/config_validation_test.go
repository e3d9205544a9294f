// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestApplyDefaults_DriverPorts(t *testing.T) {
	pg := &StructuredConfig{}
	pg.applyDefaults()
	assert.Equal(t, "localhost", pg.Storage.DB.Host)
	assert.Equal(t, 5432, pg.Storage.DB.Port)

	my := &StructuredConfig{Storage: Storage{DB: DB{Driver: DriverMySQL}}}
	my.applyDefaults()
	assert.Equal(t, 3306, my.Storage.DB.Port)
	assert.Equal(t, bcrypt.DefaultCost, my.App.PasswordHashCost)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{TokenSignKey: "k", TokenDuration: time.Minute},
		Server: Server{HTTPAddress: ":9000"},
		Storage: Storage{DB: DB{
			Driver: DriverSQLite,
			DSN:    "file::memory:",
		}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.False(t, cfg.UsesDefaultTokenSignKey())
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "file::memory:", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.DB.Host)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{Storage: Storage{DB: DB{Name: "agro"}}}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "negative token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 40 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "oracle" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no dsn and no name", mutate: func(c *StructuredConfig) { c.Storage.DB.Name = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative pool", mutate: func(c *StructuredConfig) { c.Storage.DB.MaxOpenConns = -1 }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
