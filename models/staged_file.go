// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultMIMEType is assigned to staged files whose content type could be
// neither taken from the source nor detected from the payload.
const DefaultMIMEType = "application/octet-stream"

// StagedFile is an in-memory record of a file the user has added to a staging
// buffer but not yet submitted.
//
// Payload holds the complete file content. Digest is the hex-encoded SHA-256
// of Payload and is computed once, when the file is created; it is what the
// buffer compares when deciding whether two lists hold the same files.
type StagedFile struct {
	// Name is the file name shown to the user (no directory components).
	Name string `json:"name"`

	// Size is the payload length in bytes.
	Size int64 `json:"size"`

	// MIMEType is the content type of the payload (e.g. "image/png").
	MIMEType string `json:"mime_type"`

	// Source is the URL the file was hydrated from. Empty for files the
	// user picked or dropped.
	Source string `json:"source,omitempty"`

	// Digest is the hex-encoded SHA-256 of Payload.
	Digest string `json:"digest"`

	// Payload is the raw file content. It is never serialised into JSON
	// views; downloads stream it separately.
	Payload []byte `json:"-"`
}

// IsPlaceholder reports whether f is a zero-byte stand-in produced for a
// descriptor without a URL or for a descriptor whose fetch failed.
func (f StagedFile) IsPlaceholder() bool {
	return f.Size == 0
}

// FileDescriptor names a default file a buffer should be seeded with.
// When URL is empty the file is staged as a zero-byte placeholder.
type FileDescriptor struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Resource is the result of fetching a remote file: its bytes and the content
// type reported by the source (may be empty).
type Resource struct {
	Payload     []byte
	ContentType string
}
