// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/models"
)

// FileFetcher reads file:// URLs from the local disk. Paths are resolved
// against a root directory and may not leave it.
type FileFetcher struct {
	root     *os.Root
	maxBytes int64
	logger   *logger.Logger
}

// NewFileFetcher opens rootDir. The returned fetcher must be closed.
func NewFileFetcher(rootDir string, maxBytes int64, log *logger.Logger) (*FileFetcher, error) {
	root, err := os.OpenRoot(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open local root: %w", err)
	}

	return &FileFetcher{root: root, maxBytes: maxBytes, logger: log}, nil
}

// Fetch reads the file named by rawURL. Both file:///a/b and file://a/b
// are taken relative to the root. The content type is left to sniffing.
func (f *FileFetcher) Fetch(ctx context.Context, rawURL string) (models.Resource, error) {
	if err := ctx.Err(); err != nil {
		return models.Resource{}, err
	}

	rel, err := localPath(rawURL)
	if err != nil {
		return models.Resource{}, err
	}

	file, err := f.root.Open(rel)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return models.Resource{}, fmt.Errorf("%w: %s", ErrNotFound, rawURL)
		case errors.Is(err, fs.ErrPermission):
			return models.Resource{}, fmt.Errorf("%w: %s", ErrForbidden, rawURL)
		default:
			// os.Root reports escapes as a plain path error
			return models.Resource{}, fmt.Errorf("%w: %s: %v", ErrOutsideRoot, rawURL, err)
		}
	}
	defer file.Close()

	payload, err := readLimited(file, f.maxBytes)
	if err != nil {
		return models.Resource{}, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	f.logger.Debug().Str("path", rel).Int("size", len(payload)).Msg("local file fetched")

	return models.Resource{Payload: payload}, nil
}

// Close releases the root directory handle.
func (f *FileFetcher) Close() error {
	return f.root.Close()
}

func localPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %q is not a file url", ErrInvalidURL, rawURL)
	}

	joined := filepath.Join(u.Host, filepath.FromSlash(u.Path))
	rel := filepath.Clean(string(filepath.Separator) + joined)[1:]
	if rel == "" {
		return "", fmt.Errorf("%w: %q names no file", ErrInvalidURL, rawURL)
	}

	return rel, nil
}
