// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrPasswordHashingFailed   = errors.New("password hashing failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// PublicError attaches a message that is safe to show to API clients to an
// internal error. The HTTP layer picks the status from Err and the response
// text from Message.
type PublicError struct {
	Err     error
	Message string
}

// NewPublicError wraps err with a client-facing message.
func NewPublicError(err error, format string, args ...any) *PublicError {
	return &PublicError{Err: err, Message: fmt.Sprintf(format, args...)}
}

func (e *PublicError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *PublicError) Unwrap() error {
	return e.Err
}
