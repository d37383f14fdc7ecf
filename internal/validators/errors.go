package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName   = errors.New("file has no name")
	ErrNotAccepted = errors.New("file type is not accepted")
	ErrTooBig      = errors.New("file is too big")
	ErrEmptyFiles  = errors.New("no files to validate")
)
