// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/models"
)

// newSQLiteStorages opens a migrated SQLite database in a temp dir.
// The test is skipped when the cgo driver is not available.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + filepath.Join(t.TempDir(), "agro.db") + "?_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PoolRecycle:  time.Hour,
	}

	db, err := NewConnectDB(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return NewStorages(db, logger.Nop())
}

// TestSQLite_PestAndDisinfestationFlow exercises the repositories against a
// real SQLite database.
func TestSQLite_PestAndDisinfestationFlow(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	empty, err := s.PestRepository.ListPests(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	idx, err := s.PestRepository.CreatePest(ctx, models.Pest{
		PestName:        "탄저병",
		PestDescription: "곰팡이병",
		SolutionInfo:    "살균제 살포",
	})
	require.NoError(t, err)
	assert.Positive(t, idx)

	_, err = s.PestRepository.CreatePest(ctx, models.Pest{PestName: "탄저병", PestDescription: "dup", SolutionInfo: "dup"})
	assert.ErrorIs(t, err, ErrPestAlreadyExists)

	_, err = s.PestRepository.CreatePest(ctx, models.Pest{PestName: "진딧물", PestDescription: "해충", SolutionInfo: "살충제"})
	require.NoError(t, err)

	pests, err := s.PestRepository.ListPests(ctx)
	require.NoError(t, err)
	require.Len(t, pests, 2)
	assert.Equal(t, "진딧물", pests[0].PestName)
	assert.Equal(t, "탄저병", pests[1].PestName)
	assert.False(t, pests[1].CreatedAt.IsZero())

	first := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	for _, at := range []time.Time{first, second} {
		_, err = s.DisinfestationRepository.CreateDisinfestation(ctx, models.DisinfestationRecord{
			UserID:       "farmer01",
			DisfAt:       at,
			ChemicalName: "만코제브",
			Dosage:       "500배",
		}, "탄저병")
		require.NoError(t, err)
	}

	_, err = s.DisinfestationRepository.CreateDisinfestation(ctx, models.DisinfestationRecord{
		UserID:       "farmer02",
		DisfAt:       first,
		ChemicalName: "x",
		Dosage:       "y",
	}, "탄저병")
	require.NoError(t, err)

	_, err = s.DisinfestationRepository.CreateDisinfestation(ctx, models.DisinfestationRecord{
		UserID: "farmer01", DisfAt: first, ChemicalName: "x", Dosage: "y",
	}, "없는병")
	assert.ErrorIs(t, err, ErrPestNotFound)

	records, err := s.DisinfestationRepository.ListUserDisinfestations(ctx, "farmer01")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, second.Equal(records[0].DisfAt), "newest first, got %s", records[0].DisfAt)
	assert.True(t, first.Equal(records[1].DisfAt))
	assert.Equal(t, idx, records[0].PestIdx)
	for _, r := range records {
		assert.Equal(t, "farmer01", r.UserID)
	}
}

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user := models.User{UserID: "farmer01", Password: "$2a$hash", Nick: "농부", FarmRegion: "전남"}
	require.NoError(t, s.UserRepository.CreateUser(ctx, user))
	assert.ErrorIs(t, s.UserRepository.CreateUser(ctx, user), ErrUserAlreadyExists)

	found, err := s.UserRepository.FindUserByID(ctx, "farmer01")
	require.NoError(t, err)
	assert.Equal(t, "농부", found.Nick)
	assert.Equal(t, "$2a$hash", found.Password)
	assert.False(t, found.JoinedAt.IsZero())

	_, err = s.UserRepository.FindUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
