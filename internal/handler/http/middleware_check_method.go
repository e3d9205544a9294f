// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/agro-pest-api/models"
	"github.com/go-chi/chi/v5"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON detail and an Allow header listing the methods
// the matched route does serve. Nested routers are resolved through
// [chi.Mux.Match], so parameterised patterns are handled too.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(knownMethods))
		for _, method := range knownMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeDetail(w, r, http.StatusMethodNotAllowed)
	}
}

// notFound renders unknown paths in the same {"detail": ...} shape as
// every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, r, http.StatusNotFound)
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, r, models.ErrorResponse{Detail: http.StatusText(status)}, status)
}
