// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter resolves default file descriptors to bytes.
//
// Every fetcher implements staging.Fetcher for one URL scheme:
// [HTTPFetcher] for http and https, [S3Fetcher] for s3://bucket/key and
// [FileFetcher] for file:// paths under a configured root. [Router]
// dispatches a URL to the fetcher registered for its scheme, and
// [NewFetcher] builds a router from configuration.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the scheme (e.g. [ErrNotFound]
// for an HTTP 404 as well as a missing S3 key).
package adapter

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/s3_api_mock.go -package=mock

// S3API is the subset of the S3 client used by [S3Fetcher].
// *s3.Client satisfies it.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}
