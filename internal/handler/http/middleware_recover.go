// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/agro-pest-api/internal/app"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/models"
)

// withRecover turns a handler panic into a JSON 500 and logs the stack.
// [http.ErrAbortHandler] is re-raised so net/http can abort the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			writeJSON(w, r, models.ErrorResponse{Detail: app.MsgInternalServerError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
