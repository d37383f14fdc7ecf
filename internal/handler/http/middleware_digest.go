package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
)

// contentDigestHeader carries the hex SHA-256 of a request body on uploads
// and of the payload on downloads.
const contentDigestHeader = "X-Content-SHA256"

// withContentDigest rejects uploads whose body does not hash to the
// X-Content-SHA256 header. Requests without the header pass unchecked.
func (h *Handler) withContentDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.TrimSpace(r.Header.Get(contentDigestHeader))
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		body := r.Body
		if h.maxUploadSize > 0 {
			body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}

		raw, err := io.ReadAll(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit), "error reading request body")
				return
			}
			writeError(w, r, err, "error reading request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		got := utils.Digest(raw)
		if !strings.EqualFold(got, want) {
			logger.FromRequest(r).Debug().Str("want", want).Str("got", got).Msg("body digest mismatch")
			writeError(w, r, ErrDigestMismatch, "upload integrity check failed")
			return
		}

		next.ServeHTTP(w, r)
	})
}
