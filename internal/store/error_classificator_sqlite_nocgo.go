// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

// Without cgo the sqlite3 driver is a stub that fails every Open, so no
// constraint error can reach the classifier.
type sqliteErrorClassificator struct{}

func (sqliteErrorClassificator) IsUniqueViolation(error) bool { return false }

func (sqliteErrorClassificator) IsForeignKeyViolation(error) bool { return false }
