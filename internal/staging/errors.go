// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import "errors"

var (
	// ErrValidationRejected is returned by Add when the validation hook
	// refused the candidates. The buffer is left unchanged.
	ErrValidationRejected = errors.New("staged files rejected by validation")

	// ErrUploadLimitReached is returned by Add when the policy limit is
	// greater than one and the buffer is already full.
	ErrUploadLimitReached = errors.New("upload limit reached")

	// ErrIndexOutOfRange is returned by Remove for an index outside the
	// current buffer.
	ErrIndexOutOfRange = errors.New("staged file index out of range")

	// ErrBufferDisabled is returned by insertions into a disabled buffer.
	ErrBufferDisabled = errors.New("staging buffer is disabled")

	// ErrDragDisabled is returned by Drop when the policy does not enable
	// drag-and-drop.
	ErrDragDisabled = errors.New("drag and drop is not enabled")

	// ErrBufferClosed is returned by any mutation after Close.
	ErrBufferClosed = errors.New("staging buffer is closed")
)

// RejectionError is returned by a validation hook to reject candidates with a
// specific message for the user.
type RejectionError struct {
	Message string
}

// Reject builds a *RejectionError carrying message.
func Reject(message string) error {
	return &RejectionError{Message: message}
}

func (e *RejectionError) Error() string {
	return "rejected: " + e.Message
}

// Unwrap lets errors.Is(err, ErrValidationRejected) match.
func (e *RejectionError) Unwrap() error {
	return ErrValidationRejected
}
