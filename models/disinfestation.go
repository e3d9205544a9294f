// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DisinfestationRecord is one pesticide application logged by a user
// (tb_disinfestation).
type DisinfestationRecord struct {
	// DisfIdx is the store-assigned identifier.
	DisfIdx int64 `json:"disf_idx"`

	// UserID is the owner, always taken from the authenticated token subject.
	UserID string `json:"user_id"`

	// PestIdx references tb_pest.pest_idx.
	PestIdx int64 `json:"pest_idx"`

	// DisfAt is when the treatment took place, as reported by the user.
	DisfAt time.Time `json:"disf_at"`

	ChemicalName string `json:"chemical_name"`
	Dosage       string `json:"dosage"`
	DisfMemo     string `json:"disf_memo"`

	// CreatedAt is set once on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DisinfestationRecord model.
func (d DisinfestationRecord) TableName() string {
	return "tb_disinfestation"
}

// DisinfestationCreateRequest is the body of POST /api/disinfestation/.
// The pest is referenced by its human-readable name and resolved to
// pest_idx before the record is stored.
type DisinfestationCreateRequest struct {
	PestName     string    `json:"pest_name" validate:"required,max=100"`
	DisfAt       Timestamp `json:"disf_at" validate:"required"`
	ChemicalName string    `json:"chemical_name" validate:"required,max=100"`
	Dosage       string    `json:"dosage" validate:"required,max=50"`
	DisfMemo     string    `json:"disf_memo"`
}
