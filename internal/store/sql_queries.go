// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/agro-pest-api/models"
)

const (
	pestIdxColumn = "pest_idx"
	disfIdxColumn = "disf_idx"
)

var (
	pestColumns = []string{
		"pest_idx",
		"pest_name",
		"pest_description",
		"solution_info",
		"created_at",
	}

	disinfestationColumns = []string{
		"disf_idx",
		"user_id",
		"pest_idx",
		"disf_at",
		"chemical_name",
		"dosage",
		"disf_memo",
		"created_at",
	}

	userColumns = []string{
		"user_id",
		"pwd",
		"nick",
		"farm_region",
		"joined_at",
	}
)

func selectPestIdxByNameQuery(sb sq.StatementBuilderType, pestName string) sq.SelectBuilder {
	return sb.Select(pestIdxColumn).
		From(models.Pest{}.TableName()).
		Where(sq.Eq{"pest_name": pestName}).
		Limit(1)
}

func insertPestQuery(sb sq.StatementBuilderType, pest models.Pest) sq.InsertBuilder {
	return sb.Insert(pest.TableName()).
		Columns("pest_name", "pest_description", "solution_info").
		Values(pest.PestName, pest.PestDescription, pest.SolutionInfo)
}

func selectAllPestsQuery(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select(pestColumns...).
		From(models.Pest{}.TableName()).
		OrderBy("pest_name ASC")
}

func insertDisinfestationQuery(sb sq.StatementBuilderType, record models.DisinfestationRecord) sq.InsertBuilder {
	return sb.Insert(record.TableName()).
		Columns("user_id", "pest_idx", "disf_at", "chemical_name", "dosage", "disf_memo").
		Values(record.UserID, record.PestIdx, record.DisfAt.UTC(), record.ChemicalName, record.Dosage, record.DisfMemo)
}

func selectUserDisinfestationsQuery(sb sq.StatementBuilderType, userID string) sq.SelectBuilder {
	return sb.Select(disinfestationColumns...).
		From(models.DisinfestationRecord{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("disf_at DESC", "disf_idx DESC")
}

func insertUserQuery(sb sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return sb.Insert(user.TableName()).
		Columns("user_id", "pwd", "nick", "farm_region").
		Values(user.UserID, user.Password, user.Nick, user.FarmRegion)
}

func selectUserByIDQuery(sb sq.StatementBuilderType, userID string) sq.SelectBuilder {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID})
}
