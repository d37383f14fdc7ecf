// Package http exposes staging sessions over a REST API.
//
// A client creates a session, stages files into it with multipart uploads,
// forwards drag-and-drop events, drains the toasts the buffer emitted and
// finally downloads or discards the staged files. Tracing, access logging,
// compression and upload integrity checks are handled by middlewares before
// requests reach the service layer.
package http
