// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package staging implements the upload staging buffer: an ordered, in-memory
// list of files a user picked or dropped and has not submitted yet.
//
// Every insertion goes through one policy check (see [models.UploadPolicy]):
// a limit of exactly one replaces the staged file, a larger limit rejects
// insertions once reached, no limit is strictly additive. Default files are
// hydrated concurrently from {name, url} descriptors through an injected
// [Fetcher], and an externally owned list can override local edits through
// [Buffer.Synchronize].
//
// Failures never propagate to the host as fatal: validation rejections are
// surfaced as notifications through a [Notifier], and failed fetches are
// replaced by zero-byte placeholders.
package staging

import (
	"context"

	"github.com/MKhiriev/go-upload-stager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/staging_mock.go -package=mock

// Fetcher resolves a default file URL into its bytes.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (models.Resource, error)
}

// Notifier receives transient user-facing notifications (toasts).
type Notifier interface {
	Notify(n models.Notification)
}

// Picker opens the host's native file picker. Selected files are handed back
// to the buffer by the host through [Buffer.Add].
type Picker interface {
	Open(req PickRequest)
}

// PickRequest carries the policy hints a picker needs.
type PickRequest struct {
	Accept   string
	Multiple bool
}

// ValidateFunc is a pre-insertion hook. Returning nil approves the
// candidates; returning a *RejectionError rejects them with a message shown to
// the user; any other error rejects them with the generic message.
type ValidateFunc func(ctx context.Context, candidates []models.StagedFile) error

// ChangeFunc is called after a successful insertion with the new and the
// prior buffer contents.
type ChangeFunc func(next, prev []models.StagedFile)

// RemoveFunc is called after a removal with the resulting buffer contents.
type RemoveFunc func(next []models.StagedFile)
