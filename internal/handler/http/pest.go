// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/agro-pest-api/internal/app"
	"github.com/MKhiriev/agro-pest-api/models"
)

func (h *Handler) createPest(w http.ResponseWriter, r *http.Request) {
	var req models.PestCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, app.MsgInvalidRequestBody)
		return
	}

	pestIdx, err := h.services.PestService.CreatePest(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, app.MsgPestRegistrationFailed)
		return
	}

	writeJSON(w, r, models.PestCreatedResponse{
		Message: app.MsgPestRegistered,
		PestIdx: pestIdx,
	}, http.StatusOK)
}

func (h *Handler) listPests(w http.ResponseWriter, r *http.Request) {
	pests, err := h.services.PestService.ListPests(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgPestListFailed)
		return
	}

	if pests == nil {
		pests = []models.Pest{}
	}
	writeJSON(w, r, pests, http.StatusOK)
}
