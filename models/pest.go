// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Pest is a single entry of the shared pest catalogue (tb_pest).
type Pest struct {
	// PestIdx is the store-assigned identifier.
	PestIdx int64 `json:"pest_idx"`

	// PestName is unique across the catalogue.
	PestName string `json:"pest_name"`

	PestDescription string `json:"pest_description"`

	// SolutionInfo describes how the pest is usually treated.
	SolutionInfo string `json:"solution_info"`

	// CreatedAt is set once on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Pest model.
func (p Pest) TableName() string {
	return "tb_pest"
}

// PestCreateRequest is the body of POST /api/pest/.
type PestCreateRequest struct {
	PestName        string `json:"pest_name" validate:"required,max=100"`
	PestDescription string `json:"pest_description" validate:"required"`
	SolutionInfo    string `json:"solution_info" validate:"required"`
}
