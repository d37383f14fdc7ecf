package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-upload-stager/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldName requires a non-blank file name.
	FieldName = "name"

	// FieldType checks the file against the accept filter.
	FieldType = "type"

	// FieldSize checks the payload size against the configured maximum.
	FieldSize = "size"
)

// StagedFileValidator implements the Validator interface for
// models.StagedFile and batches of them.
type StagedFileValidator struct {
	accept  AcceptFilter
	maxSize int64
}

// NewStagedFileValidator constructs a validator for the accept pattern and
// the largest allowed payload. A non-positive maxSize disables the size
// check.
func NewStagedFileValidator(accept string, maxSize int64) Validator {
	return &StagedFileValidator{
		accept:  ParseAccept(accept),
		maxSize: maxSize,
	}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.StagedFile / *models.StagedFile
//   - []models.StagedFile (first failing file wins)
//
// Errors name the offending file, e.g. "a.exe: file type is not accepted",
// and wrap the sentinel of this package.
func (v *StagedFileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StagedFile:
		return v.validateFile(value, fields...)
	case *models.StagedFile:
		return v.validateFile(*value, fields...)
	case []models.StagedFile:
		if len(value) == 0 {
			return ErrEmptyFiles
		}
		for _, f := range value {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := v.validateFile(f, fields...); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateFile checks a single file.
//
// Default validated fields (when none specified): Name, Type, Size.
func (v *StagedFileValidator) validateFile(f models.StagedFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldSize}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(f.Name) == "" {
				return ErrEmptyName
			}
		case FieldType:
			if !v.accept.Matches(f) {
				return fmt.Errorf("%s: %w", f.Name, ErrNotAccepted)
			}
		case FieldSize:
			if v.maxSize > 0 && f.Size > v.maxSize {
				return fmt.Errorf("%s: %w", f.Name, ErrTooBig)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
