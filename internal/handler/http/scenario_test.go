// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/service"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/internal/utils"
	"github.com/MKhiriev/agro-pest-api/models"
)

const (
	selectPestIdxSQL     = `SELECT pest_idx FROM tb_pest WHERE pest_name = \? LIMIT 1`
	insertPestSQL        = `INSERT INTO tb_pest \(pest_name,pest_description,solution_info\) VALUES \(\?,\?,\?\)`
	insertDisfSQL        = `INSERT INTO tb_disinfestation \(user_id,pest_idx,disf_at,chemical_name,dosage,disf_memo\)`
	insertUserSQL        = `INSERT INTO tb_user \(user_id,pwd,nick,farm_region\) VALUES \(\?,\?,\?,\?\)`
	selectUserByIDSQL    = `SELECT user_id, pwd, nick, farm_region, joined_at FROM tb_user WHERE user_id = \?`
	scenarioUserPassword = "s3cret-pw"
)

// newScenarioHandler wires the real services and repositories over a
// sqlmock connection speaking the MySQL dialect.
func newScenarioHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	log := logger.Nop()
	db := store.NewDB(conn, store.MySQLDialect, log)

	services, err := service.NewServices(store.NewStorages(db, log), config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "scenario-sign-key",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "1.0.0",
		},
	}, log)
	require.NoError(t, err)

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, log), mock
}

func loginScenarioUser(t *testing.T, h *Handler, mock sqlmock.Sqlmock) string {
	t.Helper()

	hash, err := utils.HashPassword(scenarioUserPassword, bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(selectUserByIDSQL).
		WithArgs("farmer01").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "pwd", "nick", "farm_region", "joined_at"}).
			AddRow("farmer01", hash, "김농부", "전라남도", time.Now()))

	rr := serve(t, h, http.MethodPost, "/api/auth/login",
		map[string]string{"user_id": "farmer01", "pwd": scenarioUserPassword}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	assert.Equal(t, "bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestScenario_RegisterAndLogin(t *testing.T) {
	h, mock := newScenarioHandler(t)

	mock.ExpectExec(insertUserSQL).
		WithArgs("farmer01", sqlmock.AnyArg(), "김농부", "전라남도").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rr := serve(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"user_id":     "farmer01",
		"pwd":         scenarioUserPassword,
		"nick":        "김농부",
		"farm_region": "전라남도",
	}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "farmer01", decodeBody(t, rr)["user_id"])

	loginScenarioUser(t, h, mock)
}

func TestScenario_LoginWrongPassword(t *testing.T) {
	h, mock := newScenarioHandler(t)

	hash, err := utils.HashPassword(scenarioUserPassword, bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery(selectUserByIDSQL).
		WithArgs("farmer01").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "pwd", "nick", "farm_region", "joined_at"}).
			AddRow("farmer01", hash, "김농부", "전라남도", time.Now()))

	rr := serve(t, h, http.MethodPost, "/api/auth/login",
		map[string]string{"user_id": "farmer01", "pwd": "guess"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

// TestScenario_DuplicatePest registers 탄저병 twice: the second attempt is
// stopped by the pre-check and never reaches the INSERT.
func TestScenario_DuplicatePest(t *testing.T) {
	h, mock := newScenarioHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPestIdxSQL).WithArgs("탄저병").
		WillReturnRows(sqlmock.NewRows([]string{"pest_idx"}))
	mock.ExpectExec(insertPestSQL).
		WithArgs(anthracnoseRequest.PestName, anthracnoseRequest.PestDescription, anthracnoseRequest.SolutionInfo).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rr := serve(t, h, http.MethodPost, "/api/pest/", anthracnoseRequest, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, float64(1), decodeBody(t, rr)["pest_idx"])

	mock.ExpectBegin()
	mock.ExpectQuery(selectPestIdxSQL).WithArgs("탄저병").
		WillReturnRows(sqlmock.NewRows([]string{"pest_idx"}).AddRow(int64(1)))
	mock.ExpectRollback()

	rr = serve(t, h, http.MethodPost, "/api/pest/", anthracnoseRequest, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "pest '탄저병' is already registered", decodeBody(t, rr)["detail"])
}

// TestScenario_DisinfestationForUnknownPest checks that an unregistered
// pest_name is answered with 404 and nothing is inserted.
func TestScenario_DisinfestationForUnknownPest(t *testing.T) {
	h, mock := newScenarioHandler(t)
	token := loginScenarioUser(t, h, mock)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPestIdxSQL).WithArgs("없는병").
		WillReturnRows(sqlmock.NewRows([]string{"pest_idx"}))
	mock.ExpectRollback()

	rr := serve(t, h, http.MethodPost, "/api/disinfestation/", `{
		"pest_name": "없는병",
		"disf_at": "2025-06-10T07:30:00",
		"chemical_name": "만코제브",
		"dosage": "500배액"
	}`, bearer(token))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "pest '없는병' was not found; register it first", decodeBody(t, rr)["detail"])
}

func TestScenario_DisinfestationRecorded(t *testing.T) {
	h, mock := newScenarioHandler(t)
	token := loginScenarioUser(t, h, mock)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPestIdxSQL).WithArgs("탄저병").
		WillReturnRows(sqlmock.NewRows([]string{"pest_idx"}).AddRow(int64(3)))
	mock.ExpectExec(insertDisfSQL).
		WithArgs("farmer01", int64(3), sqlmock.AnyArg(), "만코제브", "500배액", "비 오기 전 살포").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	rr := serve(t, h, http.MethodPost, "/api/disinfestation/", disinfestationBody, bearer(token))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, float64(21), decodeBody(t, rr)["disf_idx"])
}

func TestScenario_ExpiredTokenRejected(t *testing.T) {
	h, _ := newScenarioHandler(t)

	expired, err := utils.GenerateJWTToken(models.Claims{"sub": "farmer01"},
		time.Now().Add(-time.Minute), "scenario-sign-key")
	require.NoError(t, err)

	rr := serve(t, h, http.MethodGet, "/api/disinfestation/list", nil, bearer(expired.String()))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Invalid or expired authentication credentials"}`, rr.Body.String())
}
