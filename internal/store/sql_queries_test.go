// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/agro-pest-api/models"
)

func Test_selectPestIdxByNameQuery(t *testing.T) {
	query, args, err := selectPestIdxByNameQuery(PostgresDialect.Builder(), "탄저병").ToSql()
	require.NoError(t, err)

	assert.Equal(t, []any{"탄저병"}, args)
	assert.Contains(t, query, "SELECT pest_idx FROM tb_pest WHERE pest_name = $1")
	assert.NotContains(t, query, "탄저병", "values must be bound, not interpolated")
}

func Test_insertPestQuery_Placeholders(t *testing.T) {
	pest := models.Pest{PestName: "진딧물", PestDescription: "desc", SolutionInfo: "sol"}

	pgQuery, pgArgs, err := insertPestQuery(PostgresDialect.Builder(), pest).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tb_pest (pest_name,pest_description,solution_info) VALUES ($1,$2,$3)", pgQuery)
	assert.Equal(t, []any{"진딧물", "desc", "sol"}, pgArgs)

	myQuery, _, err := insertPestQuery(MySQLDialect.Builder(), pest).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tb_pest (pest_name,pest_description,solution_info) VALUES (?,?,?)", myQuery)
}

func Test_selectAllPestsQuery(t *testing.T) {
	query, args, err := selectAllPestsQuery(SQLiteDialect.Builder()).ToSql()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "FROM tb_pest ORDER BY pest_name ASC"), query)
	for _, col := range pestColumns {
		assert.Contains(t, query, col)
	}
}

func Test_insertDisinfestationQuery(t *testing.T) {
	at := time.Date(2026, 5, 3, 7, 0, 0, 0, time.FixedZone("KST", 9*60*60))
	record := models.DisinfestationRecord{
		UserID:       "farmer01",
		PestIdx:      4,
		DisfAt:       at,
		ChemicalName: "만코제브",
		Dosage:       "500배",
		DisfMemo:     "",
	}

	query, args, err := insertDisinfestationQuery(PostgresDialect.Builder(), record).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO tb_disinfestation (user_id,pest_idx,disf_at,chemical_name,dosage,disf_memo) VALUES ($1,$2,$3,$4,$5,$6)",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "farmer01", args[0])
	assert.Equal(t, int64(4), args[1])
	assert.Equal(t, time.UTC, args[2].(time.Time).Location(), "disf_at is stored in UTC")
	assert.True(t, at.Equal(args[2].(time.Time)))
}

func Test_selectUserDisinfestationsQuery(t *testing.T) {
	query, args, err := selectUserDisinfestationsQuery(PostgresDialect.Builder(), "farmer01").ToSql()
	require.NoError(t, err)

	assert.Equal(t, []any{"farmer01"}, args)
	assert.Contains(t, query, "FROM tb_disinfestation WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY disf_at DESC")
}

func Test_userQueries(t *testing.T) {
	user := models.User{UserID: "farmer01", Password: "$2a$hash", Nick: "농부", FarmRegion: "전남"}

	query, args, err := insertUserQuery(MySQLDialect.Builder(), user).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tb_user (user_id,pwd,nick,farm_region) VALUES (?,?,?,?)", query)
	assert.Equal(t, []any{"farmer01", "$2a$hash", "농부", "전남"}, args)

	query, args, err = selectUserByIDQuery(MySQLDialect.Builder(), "farmer01").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM tb_user WHERE user_id = ?")
	assert.Equal(t, []any{"farmer01"}, args)
}
