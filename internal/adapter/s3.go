// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Fetcher reads objects addressed as s3://bucket/key.
type S3Fetcher struct {
	client   S3API
	maxBytes int64
	logger   *logger.Logger
}

// NewS3Fetcher wraps an S3 client. A positive maxBytes rejects larger
// objects with [ErrTooLarge].
func NewS3Fetcher(client S3API, maxBytes int64, log *logger.Logger) *S3Fetcher {
	return &S3Fetcher{client: client, maxBytes: maxBytes, logger: log}
}

// NewS3Client builds an S3 client from the fetcher configuration. Static
// credentials are used when both keys are set, otherwise the default AWS
// credential chain applies.
func NewS3Client(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// Fetch downloads the object named by rawURL.
func (f *S3Fetcher) Fetch(ctx context.Context, rawURL string) (models.Resource, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return models.Resource{}, err
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return models.Resource{}, fmt.Errorf("failed to get %s from S3: %w", rawURL, mapS3Error(err))
	}
	defer out.Body.Close()

	if f.maxBytes > 0 && aws.ToInt64(out.ContentLength) > f.maxBytes {
		return models.Resource{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, rawURL, f.maxBytes)
	}

	payload, err := readLimited(out.Body, f.maxBytes)
	if err != nil {
		return models.Resource{}, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	f.logger.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int("size", len(payload)).
		Msg("object fetched")

	return models.Resource{
		Payload:     payload,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

func parseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: %q is not an s3 url", ErrInvalidURL, rawURL)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q needs both bucket and key", ErrInvalidURL, rawURL)
	}

	return u.Host, key, nil
}

// readLimited reads r fully, failing with ErrTooLarge once more than max
// bytes arrive. A non-positive max reads without a cap.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, max)
	}
	return data, nil
}
