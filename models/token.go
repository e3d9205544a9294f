// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Claims is the decoded claim set of an access token.
//
// Values keep the shapes produced by JSON decoding: numbers are float64,
// so "exp" is a float64 Unix timestamp after verification.
type Claims map[string]any

// Subject returns the "sub" claim or an empty string when it is absent or
// not a string.
func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// Clone returns a shallow copy of the claim set.
func (c Claims) Clone() Claims {
	cloned := make(Claims, len(c)+1)
	for k, v := range c {
		cloned[k] = v
	}
	return cloned
}

// Token is a freshly minted access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds every claim that was signed, including "exp".
	Claims Claims `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
