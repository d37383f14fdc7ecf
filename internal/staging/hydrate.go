// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"context"

	"github.com/MKhiriev/go-upload-stager/models"
	"golang.org/x/sync/errgroup"
)

// Initialize seeds the buffer from default descriptors. It reports whether
// the buffer was seeded.
//
// Every descriptor is resolved concurrently: a descriptor with a URL is
// fetched through the Fetcher, a descriptor without one (or whose fetch fails)
// becomes a zero-byte placeholder with the descriptor's name. Once all
// fetches are done the results are applied in input order, in one update,
// and only if the buffer is still empty, still alive and was never seeded
// before. Initialize never fails.
func (b *Buffer) Initialize(ctx context.Context, defaults []models.FileDescriptor) bool {
	if len(defaults) == 0 {
		return false
	}

	b.mu.Lock()
	if b.closed || b.seeded || len(b.files) > 0 {
		b.mu.Unlock()
		return false
	}
	fetcher := b.fetcher
	b.mu.Unlock()

	resolved := make([]models.StagedFile, len(defaults))

	var g errgroup.Group
	for i, d := range defaults {
		g.Go(func() error {
			resolved[i] = b.hydrate(ctx, fetcher, d)
			return nil
		})
	}
	_ = g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		b.logger.Debug().Int("defaults", len(defaults)).Msg("buffer closed during hydration, results discarded")
		return false
	}
	if b.seeded || len(b.files) > 0 {
		return false
	}

	b.commitLocked(resolved)
	b.seeded = true

	b.logger.Debug().Int("staged", len(resolved)).Msg("buffer hydrated from defaults")
	return true
}

// hydrate resolves one descriptor. Fetch failures are logged and replaced by
// a placeholder.
func (b *Buffer) hydrate(ctx context.Context, fetcher Fetcher, d models.FileDescriptor) models.StagedFile {
	name := descriptorName(d)
	if d.URL == "" || fetcher == nil {
		return placeholder(name, d.URL)
	}

	res, err := fetcher.Fetch(ctx, d.URL)
	if err != nil {
		b.logger.Warn().Err(err).Str("name", name).Str("url", d.URL).Msg("default file hydration failed, staging placeholder")
		return placeholder(name, d.URL)
	}

	return NewStagedFile(name, res.Payload, res.ContentType, d.URL)
}
