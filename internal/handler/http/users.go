// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/agro-pest-api/internal/app"
	"github.com/MKhiriev/agro-pest-api/models"
	"github.com/go-chi/chi/v5"
)

// listUsers and getUser are placeholders; they do not touch storage.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.UserListResponse{
		Message: app.MsgUserRouterRunning,
		Data:    []models.User{},
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, r, models.ErrorResponse{Detail: []models.FieldError{{
			Field: "user_id",
			Rule:  "int",
		}}}, http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, r, models.MessageResponse{
		Message: fmt.Sprintf(app.MsgFetchingUser, id),
	}, http.StatusOK)
}
