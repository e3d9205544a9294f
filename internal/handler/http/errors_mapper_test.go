// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/service"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/internal/validators"
	"github.com/MKhiriev/agro-pest-api/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "malformed json", err: fmt.Errorf("%w: unexpected EOF", ErrMalformedJSON), want: http.StatusBadRequest},
		{name: "validation", err: &validators.ValidationError{}, want: http.StatusUnprocessableEntity},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "duplicate pest", err: service.NewPublicError(store.ErrPestAlreadyExists, "dup"), want: http.StatusConflict},
		{name: "duplicate user", err: fmt.Errorf("register: %w", store.ErrUserAlreadyExists), want: http.StatusConflict},
		{name: "unknown pest", err: store.ErrPestNotFound, want: http.StatusNotFound},
		{name: "query failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("something else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantAuth   string
	}{
		{
			name:       "server error hides cause",
			err:        fmt.Errorf("%w: dial tcp 10.0.0.5:3306: connection refused", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"could not do the thing"}`,
		},
		{
			name:       "public error message",
			err:        service.NewPublicError(store.ErrPestNotFound, "pest '%s' was not found", "흰가루병"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"pest '흰가루병' was not found"}`,
		},
		{
			name: "validation fields",
			err: &validators.ValidationError{Fields: []models.FieldError{
				{Field: "pest_name", Rule: "required"},
				{Field: "dosage", Rule: "max", Param: "50"},
			}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":[{"field":"pest_name","rule":"required"},{"field":"dosage","rule":"max","param":"50"}]}`,
		},
		{
			name:       "unauthorized adds challenge",
			err:        service.ErrWrongPassword,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Unauthorized"}`,
			wantAuth:   "Bearer",
		},
		{
			name:       "malformed json",
			err:        fmt.Errorf("%w: invalid character 'x'", ErrMalformedJSON),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"malformed JSON body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			h.writeError(rr, req, tt.err, "could not do the thing")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantAuth, rr.Header().Get("WWW-Authenticate"))
		})
	}
}
