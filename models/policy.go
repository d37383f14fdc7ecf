// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadPolicy governs how many files a staging buffer may hold and how the
// host presents it.
//
// Limit semantics:
//   - 0: unlimited, insertions are strictly additive;
//   - 1: replace, a new insertion evicts the single existing file;
//   - N > 1: reject, insertions are refused once N files are staged.
type UploadPolicy struct {
	// Limit is the maximum number of staged files. Zero means no limit.
	Limit int `json:"limit,omitempty"`

	// Accept is an HTML accept-style filter: comma-separated MIME types,
	// MIME wildcards ("image/*") and extensions (".pdf").
	Accept string `json:"accept,omitempty"`

	// Multiple allows more than one file to be inserted in one operation.
	Multiple bool `json:"multiple"`

	// Drag enables the drag-and-drop hover state.
	Drag bool `json:"drag"`

	// Disabled blocks insertion, picking and hover.
	Disabled bool `json:"disabled"`
}

// Replaces reports whether the policy uses replace semantics.
func (p UploadPolicy) Replaces() bool {
	return p.Limit == 1
}

// Unlimited reports whether the policy sets no maximum count.
func (p UploadPolicy) Unlimited() bool {
	return p.Limit <= 0
}
