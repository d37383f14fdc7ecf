// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DragState is the hover state of a drag-and-drop target.
type DragState string

const (
	DragIdle     DragState = "idle"
	DragHovering DragState = "hovering"
)

// DragEvent is a drag-and-drop browser event forwarded to a buffer.
type DragEvent string

const (
	DragEventEnter DragEvent = "enter"
	DragEventOver  DragEvent = "over"
	DragEventLeave DragEvent = "leave"
)

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	// Policy overrides the configured default policy. Nil keeps the default.
	Policy *UploadPolicy `json:"policy,omitempty"`

	// Defaults are hydrated into the new session's buffer.
	Defaults []FileDescriptor `json:"defaults,omitempty"`
}

// SessionView is the JSON representation of a staging session. File
// payloads are omitted; they are served by the file download route.
type SessionView struct {
	ID        string       `json:"id"`
	Policy    UploadPolicy `json:"policy"`
	Files     []StagedFile `json:"files"`
	Revision  uint64       `json:"revision"`
	DragState DragState    `json:"drag_state"`
	Seeded    bool         `json:"seeded"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// SynchronizeResponse is the body of PUT /api/sessions/{id}/files.
type SynchronizeResponse struct {
	// Changed reports whether the uploaded list differed from the staged
	// one and replaced it.
	Changed bool        `json:"changed"`
	Session SessionView `json:"session"`
}
