package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidURL        = errors.New("invalid resource url")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	ErrOutsideRoot       = errors.New("path escapes the local root")
	ErrTooLarge          = errors.New("resource is too large")
)
