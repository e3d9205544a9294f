// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/utils"
	"github.com/MKhiriev/agro-pest-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the verified claims and their subject in the request context (see
// [utils.WithAuthenticatedUser]) before delegating to the next handler.
//
// Rejections are answered with 401 Unauthorized and a
// "WWW-Authenticate: Bearer" challenge:
//   - a missing or malformed header gets "Not authenticated";
//   - a token that fails verification gets a generic
//     "Invalid or expired authentication credentials", whatever the cause.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			h.unauthorized(w, r, notAuthenticatedMessage)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			h.unauthorized(w, r, notAuthenticatedMessage)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			h.unauthorized(w, r, invalidCredentialsMessage)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthenticatedUser(ctx, claims)))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSON(w, r, models.ErrorResponse{Detail: msg}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not Bearer or the
//     header does not have exactly two parts.
//   - [ErrEmptyToken] if the header is just the scheme.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return "", ErrEmptyToken
	}
	if strings.ContainsAny(tokenString, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
