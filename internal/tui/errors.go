// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by Run when the user leaves without submitting.
	ErrUserQuit = errors.New("user quit without submitting")

	// ErrNothingPasted is reported when the clipboard holds no file path.
	ErrNothingPasted = errors.New("clipboard holds no file path")
)
