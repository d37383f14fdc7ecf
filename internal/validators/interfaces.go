// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the pre-insertion checks of the staging
// buffer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Hook: adapts a Validator to staging.ValidateFunc, turning every
//     domain failure into a message-carrying rejection.
//
// Usage patterns:
//  1. Build hooks with [Accept], [MaxSize] or [FromPolicy].
//  2. Combine them with [Chain]; the first rejection wins.
//  3. Pass the result as staging.Options.Validate.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
