// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, Prometheus instrumentation, response
// compression and bearer-token authentication are handled in this package
// before requests are delegated to the service layer. Every failure leaves
// the package through [Handler.writeError], which picks the status code and
// makes sure internal error details never reach the client.
package http
