// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// PestCreatedResponse is returned after a pest is registered.
type PestCreatedResponse struct {
	Message string `json:"message"`
	PestIdx int64  `json:"pest_idx"`
}

// DisinfestationCreatedResponse is returned after a record is stored.
type DisinfestationCreatedResponse struct {
	Message string `json:"message"`
	DisfIdx int64  `json:"disf_idx"`
}

// UserRegisteredResponse is returned after a successful registration.
type UserRegisteredResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// TokenResponse follows the OAuth2 password-flow response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserListResponse is the placeholder payload of GET /api/users/.
type UserListResponse struct {
	Message string `json:"message"`
	Data    []User `json:"data"`
}

// ErrorResponse is the body of every non-2xx JSON response.
// Detail is either a string or a list of [FieldError].
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}
