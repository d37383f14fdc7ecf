// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the stager's HTTP
// handlers and middleware.
//
// Messages written here replace the error text of failures the client
// cannot act on, so internal details do not leak into response bodies.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes and for methods a route
	// does not serve.
	MsgNotFound = "not found"
)
