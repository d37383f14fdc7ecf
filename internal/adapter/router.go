// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/models"
)

// Router dispatches a fetch to the fetcher registered for the URL scheme.
type Router struct {
	fetchers map[string]staging.Fetcher
	closers  []io.Closer
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{fetchers: make(map[string]staging.Fetcher)}
}

// Handle registers f for the given schemes, replacing earlier registrations.
// A fetcher registered more than once is closed once.
func (r *Router) Handle(f staging.Fetcher, schemes ...string) *Router {
	for _, scheme := range schemes {
		r.fetchers[strings.ToLower(scheme)] = f
	}
	if c, ok := f.(io.Closer); ok && !slices.Contains(r.closers, c) {
		r.closers = append(r.closers, c)
	}
	return r
}

// Schemes lists the registered schemes in sorted order.
func (r *Router) Schemes() []string {
	schemes := make([]string, 0, len(r.fetchers))
	for scheme := range r.fetchers {
		schemes = append(schemes, scheme)
	}
	slices.Sort(schemes)
	return schemes
}

// Fetch resolves rawURL through the matching fetcher.
func (r *Router) Fetch(ctx context.Context, rawURL string) (models.Resource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	f, ok := r.fetchers[strings.ToLower(u.Scheme)]
	if !ok {
		return models.Resource{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	return f.Fetch(ctx, rawURL)
}

// Close closes every registered fetcher that holds resources.
func (r *Router) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// NewFetcher builds the router described by cfg: http and https are always
// served; s3 is added when a region is configured and file when a local
// root is.
func NewFetcher(ctx context.Context, cfg config.Fetcher, log *logger.Logger) (*Router, error) {
	router := NewRouter()

	httpClient := utils.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	router.Handle(NewHTTPFetcher(httpClient, cfg.MaxBytes, log), "http", "https")

	if cfg.S3.Region != "" {
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("error creating s3 fetcher: %w", err)
		}
		router.Handle(NewS3Fetcher(client, cfg.MaxBytes, log), "s3")
		log.Info().Str("region", cfg.S3.Region).Str("endpoint", cfg.S3.Endpoint).Msg("s3 fetcher enabled")
	}

	if cfg.LocalRoot != "" {
		fileFetcher, err := NewFileFetcher(cfg.LocalRoot, cfg.MaxBytes, log)
		if err != nil {
			return nil, fmt.Errorf("error creating file fetcher: %w", err)
		}
		router.Handle(fileFetcher, "file")
		log.Info().Str("root", cfg.LocalRoot).Msg("file fetcher enabled")
	}

	return router, nil
}
