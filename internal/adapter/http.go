// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/go-resty/resty/v2"
)

// HTTPFetcher downloads http and https resources with a GET request.
type HTTPFetcher struct {
	client   *utils.HTTPClient
	maxBytes int64
	logger   *logger.Logger
}

// NewHTTPFetcher returns a fetcher that uses client for every request.
// A positive maxBytes rejects bodies larger than that with [ErrTooLarge].
func NewHTTPFetcher(client *utils.HTTPClient, maxBytes int64, log *logger.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:   client,
		maxBytes: maxBytes,
		logger:   log,
	}
}

// Fetch downloads rawURL. Non-2xx responses are mapped to the package
// sentinels by mapHTTPError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (models.Resource, error) {
	req := f.client.R().SetContext(ctx)
	if f.maxBytes > 0 {
		req.SetResponseBodyLimit(int(f.maxBytes))
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		if errors.Is(err, resty.ErrResponseBodyTooLarge) {
			return models.Resource{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, rawURL, f.maxBytes)
		}
		return models.Resource{}, fmt.Errorf("fetch request %s: %w", rawURL, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	f.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode()).
		Int64("size", resp.Size()).
		Msg("resource fetched")

	return models.Resource{
		Payload:     resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}
