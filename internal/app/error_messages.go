// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// agro-pest-api HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent throughout the API.
package app

// Success messages.
const (
	MsgUserRegistered           = "user registered successfully"
	MsgPestRegistered           = "pest information registered successfully"
	MsgDisinfestationRegistered = "disinfestation record registered successfully"
	MsgUserRouterRunning        = "user router is running"

	// MsgFetchingUser is a format string taking the requested user id.
	MsgFetchingUser = "Fetching user with ID: %d"
)

// Failure messages. A 5xx response carries one of these instead of the
// underlying error.
const (
	// MsgInternalServerError answers a request whose handler panicked.
	MsgInternalServerError = "internal server error"

	// MsgInvalidRequestBody is the fallback when request decoding fails.
	MsgInvalidRequestBody = "invalid request body"

	MsgRegistrationFailed = "error occurred while registering user"
	MsgLoginFailed        = "error occurred while logging in"

	MsgPestRegistrationFailed = "error occurred while registering pest information"
	MsgPestListFailed         = "error occurred while fetching pest information"

	MsgDisinfestationRegistrationFailed = "server error occurred while registering the disinfestation record"
	MsgDisinfestationListFailed         = "error occurred while fetching disinfestation records"

	// MsgNotAuthenticated answers requests without usable bearer credentials.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidCredentials answers requests whose token failed verification,
	// whatever the cause.
	MsgInvalidCredentials = "Invalid or expired authentication credentials"
)
