// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/agro-pest-api/internal/app"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/utils"
	"github.com/MKhiriev/agro-pest-api/models"
)

// createDisinfestation stores a treatment for the authenticated user. The
// owner is always the token subject, never a body field.
func (h *Handler) createDisinfestation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no authenticated user in context")
		h.unauthorized(w, r, invalidCredentialsMessage)
		return
	}

	var req models.DisinfestationCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgInvalidRequestBody)
		return
	}

	disfIdx, err := h.services.DisinfestationService.CreateDisinfestation(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err, app.MsgDisinfestationRegistrationFailed)
		return
	}

	writeJSON(w, r, models.DisinfestationCreatedResponse{
		Message: app.MsgDisinfestationRegistered,
		DisfIdx: disfIdx,
	}, http.StatusOK)
}

func (h *Handler) listDisinfestations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no authenticated user in context")
		h.unauthorized(w, r, invalidCredentialsMessage)
		return
	}

	records, err := h.services.DisinfestationService.ListUserDisinfestations(ctx, userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgDisinfestationListFailed)
		return
	}

	if records == nil {
		records = []models.DisinfestationRecord{}
	}
	writeJSON(w, r, records, http.StatusOK)
}
