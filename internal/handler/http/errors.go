// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors detected by the handlers before the service layer is
// called. They are mapped to status codes in errorStatusMap.
var (
	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidMultipart is returned when a file upload is not a valid
	// multipart/form-data body.
	ErrInvalidMultipart = errors.New("invalid multipart body")

	// ErrNoFilesInRequest is returned by POST .../files when the body has no
	// "file" parts.
	ErrNoFilesInRequest = errors.New("no files in request")

	// ErrRequestTooLarge is returned when the body exceeds the configured
	// upload size.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrInvalidIndex is returned when the {index} path parameter is not a
	// number.
	ErrInvalidIndex = errors.New("invalid file index")

	// ErrDigestMismatch is returned by withContentDigest when the body does
	// not hash to the X-Content-SHA256 header.
	ErrDigestMismatch = errors.New("integrity check failed")
)
