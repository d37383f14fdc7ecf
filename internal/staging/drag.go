// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"context"

	"github.com/MKhiriev/go-upload-stager/models"
)

// DragState returns the current hover state.
func (b *Buffer) DragState() models.DragState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.drag
}

// DragEnter marks the drop target as hovered. Ignored unless the policy
// enables drag mode and the buffer is enabled.
func (b *Buffer) DragEnter() models.DragState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed && b.policy.Drag && !b.policy.Disabled {
		b.drag = models.DragHovering
	}
	return b.drag
}

// DragOver behaves like DragEnter; browsers fire it repeatedly while hovering.
func (b *Buffer) DragOver() models.DragState {
	return b.DragEnter()
}

// DragLeave returns the drop target to idle.
func (b *Buffer) DragLeave() models.DragState {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.drag = models.DragIdle
	return b.drag
}

// HandleDragEvent dispatches a forwarded drag event.
func (b *Buffer) HandleDragEvent(ev models.DragEvent) models.DragState {
	switch ev {
	case models.DragEventEnter:
		return b.DragEnter()
	case models.DragEventOver:
		return b.DragOver()
	default:
		return b.DragLeave()
	}
}

// Drop returns the drop target to idle and inserts files through Add.
func (b *Buffer) Drop(ctx context.Context, files ...models.StagedFile) error {
	b.mu.Lock()
	b.drag = models.DragIdle
	dragEnabled := b.policy.Drag
	b.mu.Unlock()

	if !dragEnabled {
		return ErrDragDisabled
	}
	return b.Add(ctx, files...)
}
