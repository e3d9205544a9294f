// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the agro-pest-api server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a local .env file is loaded first, without
//     overriding variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//
// Missing values are then filled with defaults and the result is validated.
// The main entry point is [GetStructuredConfig].
package config
