package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-upload-stager/internal/app"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/service"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidMultipart: http.StatusBadRequest,
	ErrNoFilesInRequest: http.StatusBadRequest,
	ErrRequestTooLarge:  http.StatusRequestEntityTooLarge,
	ErrInvalidIndex:     http.StatusNotFound,
	ErrDigestMismatch:   http.StatusBadRequest,

	service.ErrSessionNotFound:  http.StatusNotFound,
	service.ErrUnknownDragEvent: http.StatusBadRequest,
	service.ErrInvalidPolicy:    http.StatusBadRequest,

	staging.ErrValidationRejected: http.StatusUnprocessableEntity,
	staging.ErrUploadLimitReached: http.StatusConflict,
	staging.ErrDragDisabled:       http.StatusConflict,
	staging.ErrBufferDisabled:     http.StatusLocked,
	staging.ErrIndexOutOfRange:    http.StatusNotFound,
	staging.ErrBufferClosed:       http.StatusGone,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Validation rejections
// carry the message meant for the user; other client errors expose the error
// text and server errors are reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}
	log.Warn().Err(err).Int("status", status).Msg(msg)

	var rejection *staging.RejectionError
	if errors.As(err, &rejection) && rejection.Message != "" {
		utils.WriteError(w, rejection.Message, status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
