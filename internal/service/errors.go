package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSessionNotFound  = errors.New("staging session not found")
	ErrUnknownDragEvent = errors.New("unknown drag event")
	ErrInvalidPolicy    = errors.New("invalid upload policy")
	ErrInvalidTTL       = errors.New("session ttl must be positive")
)
