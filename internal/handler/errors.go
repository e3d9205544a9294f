// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no listening
	// address is provided in the server configuration. This is treated as a
	// fatal misconfiguration and causes the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServicesProvided is returned by NewHandlers for a nil service set.
	errNoServicesProvided = errors.New("no services provided")
)
