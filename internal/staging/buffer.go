// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/models"
)

// DefaultRejectionMessage is shown when a validation hook rejects candidates
// without a message of its own.
const DefaultRejectionMessage = "file was rejected"

// Options configures a Buffer. Every field is optional.
type Options struct {
	Policy models.UploadPolicy

	// Initial seeds the buffer before any hydration.
	Initial []models.StagedFile

	Validate ValidateFunc
	OnChange ChangeFunc
	OnRemove RemoveFunc

	Fetcher  Fetcher
	Notifier Notifier
	Picker   Picker

	// RejectionMessage overrides DefaultRejectionMessage.
	RejectionMessage string

	Logger *logger.Logger
}

// Buffer is an upload staging buffer. It is owned by a single host (a TUI
// model or an HTTP session); its methods are safe to call from the host's
// goroutines, but callbacks run on the caller's goroutine after the buffer
// lock is released.
type Buffer struct {
	mu sync.Mutex

	policy   models.UploadPolicy
	files    []models.StagedFile
	revision uint64
	drag     models.DragState
	seeded   bool
	closed   bool

	// fingerprint caches Fingerprint(files); empty means stale.
	fingerprint string

	validate ValidateFunc
	onChange ChangeFunc
	onRemove RemoveFunc

	fetcher  Fetcher
	notifier Notifier
	picker   Picker

	rejectionMessage string
	logger           *logger.Logger
}

// New creates a Buffer from opts.
func New(opts Options) *Buffer {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}

	msg := opts.RejectionMessage
	if msg == "" {
		msg = DefaultRejectionMessage
	}

	return &Buffer{
		policy:           opts.Policy,
		files:            slices.Clone(opts.Initial),
		drag:             models.DragIdle,
		validate:         opts.Validate,
		onChange:         opts.OnChange,
		onRemove:         opts.OnRemove,
		fetcher:          opts.Fetcher,
		notifier:         opts.Notifier,
		picker:           opts.Picker,
		rejectionMessage: msg,
		logger:           l,
	}
}

// Files returns a copy of the staged files in order.
func (b *Buffer) Files() []models.StagedFile {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.files)
}

// Len returns the number of staged files.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.files)
}

// Revision is incremented on every change of the buffer contents.
func (b *Buffer) Revision() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.revision
}

// Policy returns the current policy.
func (b *Buffer) Policy() models.UploadPolicy {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.policy
}

// SetPolicy replaces the policy. Already staged files are kept even when the
// new limit is lower; the limit applies to later insertions.
func (b *Buffer) SetPolicy(p models.UploadPolicy) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.policy = p
	if p.Disabled || !p.Drag {
		b.drag = models.DragIdle
	}
}

// Seeded reports whether Initialize has populated the buffer.
func (b *Buffer) Seeded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.seeded
}

// Alive reports whether the buffer has not been closed.
func (b *Buffer) Alive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return !b.closed
}

// Add inserts candidates after validation and the capacity policy, then
// calls OnChange with the new and the prior contents.
func (b *Buffer) Add(ctx context.Context, candidates ...models.StagedFile) error {
	if len(candidates) == 0 {
		return nil
	}

	b.mu.Lock()
	if err := b.checkWritableLocked(); err != nil {
		b.mu.Unlock()
		return err
	}
	validate := b.validate
	b.mu.Unlock()

	if validate != nil {
		if err := validate(ctx, slices.Clone(candidates)); err != nil {
			return b.reject(err)
		}
	}

	b.mu.Lock()
	if err := b.checkWritableLocked(); err != nil {
		b.mu.Unlock()
		return err
	}

	prev := b.files
	next, skipped, err := applyCapacity(prev, candidates, b.policy.Limit)
	if err != nil {
		limit := b.policy.Limit
		b.mu.Unlock()

		b.notify(models.NotificationWarning, fmt.Sprintf("upload limit of %d files reached", limit))
		return err
	}

	b.commitLocked(next)
	onChange := b.onChange
	b.mu.Unlock()

	if skipped > 0 {
		b.notify(models.NotificationWarning, fmt.Sprintf("upload limit reached, %d file(s) skipped", skipped))
	}
	b.logger.Debug().Int("added", len(candidates)-skipped).Int("staged", len(next)).Msg("files staged")

	if onChange != nil {
		onChange(slices.Clone(next), slices.Clone(prev))
	}
	return nil
}

// Remove deletes the file at index, keeping the order of the others, and
// calls OnRemove with the resulting contents.
func (b *Buffer) Remove(index int) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBufferClosed
	}
	if index < 0 || index >= len(b.files) {
		size := len(b.files)
		b.mu.Unlock()
		return fmt.Errorf("%w: index %d, %d staged", ErrIndexOutOfRange, index, size)
	}

	next := slices.Delete(slices.Clone(b.files), index, index+1)
	b.commitLocked(next)
	onRemove := b.onRemove
	b.mu.Unlock()

	if onRemove != nil {
		onRemove(slices.Clone(next))
	}
	return nil
}

// Synchronize replaces the buffer with external when the two lists differ.
// Lists are compared by fingerprint, so a caller pushing the list it already
// owns causes no change. Reports whether the buffer was replaced.
func (b *Buffer) Synchronize(external []models.StagedFile) bool {
	target := Fingerprint(external)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}
	if b.fingerprintLocked() == target {
		return false
	}

	b.files = slices.Clone(external)
	b.revision++
	b.fingerprint = target

	b.logger.Debug().Int("staged", len(b.files)).Msg("buffer synchronized with external list")
	return true
}

// TriggerPick opens the host's file picker. It does nothing and returns false
// when the buffer is disabled, closed, or has no picker.
func (b *Buffer) TriggerPick() bool {
	b.mu.Lock()
	if b.closed || b.policy.Disabled || b.picker == nil {
		b.mu.Unlock()
		return false
	}
	picker := b.picker
	req := PickRequest{Accept: b.policy.Accept, Multiple: b.policy.Multiple}
	b.mu.Unlock()

	picker.Open(req)
	return true
}

// Close tears the buffer down: staged files are dropped and results of an
// in-flight Initialize are discarded when they arrive.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.files = nil
	b.fingerprint = ""
	b.drag = models.DragIdle
}

// reject notifies the user about a validation rejection and returns the error
// for the host.
func (b *Buffer) reject(err error) error {
	var rejection *RejectionError
	if errors.As(err, &rejection) && rejection.Message != "" {
		b.notify(models.NotificationError, rejection.Message)
		return rejection
	}

	b.notify(models.NotificationError, b.rejectionMessage)
	if errors.Is(err, ErrValidationRejected) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrValidationRejected, err)
}

func (b *Buffer) notify(level models.NotificationLevel, message string) {
	b.logger.Info().Str("level", string(level)).Str("notification", message).Msg("staging notification")

	if b.notifier == nil {
		return
	}
	b.notifier.Notify(models.Notification{
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
}

func (b *Buffer) checkWritableLocked() error {
	if b.closed {
		return ErrBufferClosed
	}
	if b.policy.Disabled {
		return ErrBufferDisabled
	}
	return nil
}

func (b *Buffer) commitLocked(next []models.StagedFile) {
	b.files = next
	b.revision++
	b.fingerprint = ""
}

func (b *Buffer) fingerprintLocked() string {
	if b.fingerprint == "" {
		b.fingerprint = Fingerprint(b.files)
	}
	return b.fingerprint
}
