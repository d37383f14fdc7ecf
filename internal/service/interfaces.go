// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the staging sessions served over HTTP. Each session
// owns one staging.Buffer together with the queue its toasts are collected
// in, and is torn down explicitly or by Sweep once idle for longer than the
// configured TTL.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-upload-stager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=StagingServiceWrapper

// StagingService manages staging sessions. Every method taking an id
// returns ErrSessionNotFound for unknown or swept sessions.
type StagingService interface {
	// Create opens a session with the request policy (or the configured
	// default) and hydrates its defaults before returning.
	Create(ctx context.Context, req models.CreateSessionRequest) (models.SessionView, error)
	Get(ctx context.Context, id string) (models.SessionView, error)

	// Add inserts files through validation and the capacity policy.
	Add(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error)
	// Drop ends a drag gesture and inserts files like Add.
	Drop(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error)
	Remove(ctx context.Context, id string, index int) (models.SessionView, error)
	// Synchronize replaces the staged list when external differs; the bool
	// reports whether it did.
	Synchronize(ctx context.Context, id string, external []models.StagedFile) (models.SessionView, bool, error)
	Drag(ctx context.Context, id string, event models.DragEvent) (models.SessionView, error)

	// File returns the staged file at index including its payload.
	File(ctx context.Context, id string, index int) (models.StagedFile, error)
	// Notifications drains the toasts queued since the last call.
	Notifications(ctx context.Context, id string) ([]models.Notification, error)

	Close(ctx context.Context, id string) error
	// Sweep closes the sessions idle since before now minus the TTL and
	// returns how many it closed.
	Sweep(ctx context.Context, now time.Time) int
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// StagingServiceWrapper defines middleware composition for StagingService.
// Implementations wrap an existing StagingService to add behavior such as
// logging.
type StagingServiceWrapper interface {
	Wrap(StagingService) StagingService // returns a decorated StagingService applying additional behavior
}
