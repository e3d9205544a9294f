// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// PestServiceWrapper defines middleware composition for PestService.
// Implementations wrap an existing PestService to add behavior such as
// validation.
type PestServiceWrapper interface {
	Wrap(PestService) PestService
}

// DisinfestationServiceWrapper defines middleware composition for
// DisinfestationService.
type DisinfestationServiceWrapper interface {
	Wrap(DisinfestationService) DisinfestationService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
