// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/agro-pest-api/internal/logger"

// Storages groups every repository backed by one connection pool.
type Storages struct {
	UserRepository           UserRepository
	PestRepository           PestRepository
	DisinfestationRepository DisinfestationRepository
}

// NewStorages constructs all repositories over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		PestRepository:           NewPestRepository(db, log),
		DisinfestationRepository: NewDisinfestationRepository(db, log),
	}
}
