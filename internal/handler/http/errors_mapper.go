// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/service"
	"github.com/MKhiriev/agro-pest-api/internal/store"
	"github.com/MKhiriev/agro-pest-api/internal/utils"
	"github.com/MKhiriev/agro-pest-api/internal/validators"
	"github.com/MKhiriev/agro-pest-api/models"
)

var errorStatusMap = map[error]int{
	ErrMalformedJSON:            http.StatusBadRequest,
	validators.ErrInvalidRequest: http.StatusUnprocessableEntity,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrPestAlreadyExists: http.StatusConflict,
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrPestNotFound:      http.StatusNotFound,
	store.ErrUserNotFound:      http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrReadingInsertID:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"detail": ...}.
//
// Validation failures carry their field list. Other 4xx errors use the
// message of a [service.PublicError] when there is one, or the status text.
// A 5xx response always carries fallbackMsg; the cause is only logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	var detail any
	var vErr *validators.ValidationError
	var pubErr *service.PublicError
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("uri", r.RequestURI).Msg(fallbackMsg)
		detail = fallbackMsg
	case errors.As(err, &vErr):
		log.Debug().Err(err).Msg("request rejected by validation")
		detail = vErr.Fields
	case errors.Is(err, ErrMalformedJSON):
		log.Debug().Err(err).Msg("request body rejected")
		detail = ErrMalformedJSON.Error()
	case errors.As(err, &pubErr):
		log.Info().Err(err).Int("status", status).Send()
		detail = pubErr.Message
	default:
		log.Info().Err(err).Int("status", status).Send()
		detail = http.StatusText(status)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); wErr != nil {
		log.Err(wErr).Msg("failed to write error response")
	}
}

// writeJSON writes data with statusCode and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
