// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies against their `validate` struct tags.
// Field names in reported errors are taken from the `json` tag so that
// clients see the same names they sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a RequestValidator with the custom rules used
// by request models registered.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// a Timestamp is "required" when it carries a non-zero time
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ts, ok := field.Interface().(models.Timestamp); ok && !ts.IsZero() {
			return ts.Time
		}
		return nil
	}, models.Timestamp{})

	return &RequestValidator{validate: v}
}

// Validate validates a struct (or pointer to struct). When fields are given,
// only those struct fields (Go names) are checked.
//
// A failed check is returned as *[ValidationError].
func (r *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		logger.FromContext(ctx).Err(err).Str("func", "*RequestValidator.Validate").Msg("value cannot be validated")
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, models.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
