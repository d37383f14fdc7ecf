// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/models"
)

// Hook runs v over the candidates of an insertion. Domain failures become
// message-carrying rejections; anything else (unknown field, canceled
// context) is returned as is and ends up as the generic rejection.
func Hook(v Validator, fields ...string) staging.ValidateFunc {
	return func(ctx context.Context, candidates []models.StagedFile) error {
		err := v.Validate(ctx, candidates, fields...)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNotAccepted) || errors.Is(err, ErrTooBig) {
			return staging.Reject(err.Error())
		}
		return err
	}
}

// Accept rejects files that do not match the HTML accept pattern.
func Accept(pattern string) staging.ValidateFunc {
	return Hook(NewStagedFileValidator(pattern, 0), FieldType)
}

// MaxSize rejects files larger than maxBytes.
func MaxSize(maxBytes int64) staging.ValidateFunc {
	return Hook(NewStagedFileValidator("", maxBytes), FieldSize)
}

// Chain runs hooks in order and returns the first rejection. Nil hooks are
// skipped; a chain of nothing approves everything.
func Chain(hooks ...staging.ValidateFunc) staging.ValidateFunc {
	return func(ctx context.Context, candidates []models.StagedFile) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			if err := hook(ctx, candidates); err != nil {
				return err
			}
		}
		return nil
	}
}

// FromPolicy builds the hook implied by a policy and a size cap, or nil
// when neither constrains anything.
func FromPolicy(policy models.UploadPolicy, maxBytes int64) staging.ValidateFunc {
	var hooks []staging.ValidateFunc
	if !ParseAccept(policy.Accept).IsZero() {
		hooks = append(hooks, Accept(policy.Accept))
	}
	if maxBytes > 0 {
		hooks = append(hooks, MaxSize(maxBytes))
	}

	if len(hooks) == 0 {
		return nil
	}
	return Chain(hooks...)
}
