// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/agro-pest-api/internal/validators"
	"github.com/MKhiriev/agro-pest-api/models"
)

// maxBodyBytes caps request bodies accepted by decodeJSON.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst.
//
// Syntax errors, empty bodies and anything after the first JSON value are
// reported as [ErrMalformedJSON]. A value
// of the wrong JSON type is reported as a *[validators.ValidationError] so it
// renders like any other field failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON body", ErrMalformedJSON)
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &validators.ValidationError{Fields: []models.FieldError{{
			Field: typeErr.Field,
			Rule:  "type",
			Param: typeErr.Type.String(),
		}}}
	}

	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty body", ErrMalformedJSON)
	}
	return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
}
