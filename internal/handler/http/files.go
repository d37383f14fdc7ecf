package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/go-chi/chi/v5"
)

const (
	// formFileField is the multipart field staged files are uploaded in.
	formFileField = "file"

	// multipartMemory is how much of a multipart body is kept in memory
	// before parts spill to temporary files.
	multipartMemory = 8 << 20
)

// addFiles stages the uploaded files. With ?drop=true the upload ends a
// drag gesture and goes through Drop instead of Add.
func (h *Handler) addFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.readStagedFiles(w, r)
	if err != nil {
		writeError(w, r, err, "error reading uploaded files")
		return
	}
	if len(files) == 0 {
		writeError(w, r, ErrNoFilesInRequest, "error reading uploaded files")
		return
	}

	id := chi.URLParam(r, "id")
	insert := h.services.StagingService.Add
	if drop, _ := strconv.ParseBool(r.URL.Query().Get("drop")); drop {
		insert = h.services.StagingService.Drop
	}

	view, err := insert(r.Context(), id, files...)
	if err != nil {
		writeError(w, r, err, "error staging files")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

// synchronizeFiles replaces the staged list with the uploaded one. An upload
// without files clears the session.
func (h *Handler) synchronizeFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.readStagedFiles(w, r)
	if err != nil {
		writeError(w, r, err, "error reading uploaded files")
		return
	}

	view, changed, err := h.services.StagingService.Synchronize(r.Context(), chi.URLParam(r, "id"), files)
	if err != nil {
		writeError(w, r, err, "error synchronizing files")
		return
	}

	_, _ = utils.WriteJSON(w, models.SynchronizeResponse{Changed: changed, Session: view}, http.StatusOK)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	index, err := fileIndex(r)
	if err != nil {
		writeError(w, r, err, "error parsing file index")
		return
	}

	file, err := h.services.StagingService.File(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		writeError(w, r, err, "error getting staged file")
		return
	}

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Payload)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set(contentDigestHeader, file.Digest)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Payload)
}

func (h *Handler) removeFile(w http.ResponseWriter, r *http.Request) {
	index, err := fileIndex(r)
	if err != nil {
		writeError(w, r, err, "error parsing file index")
		return
	}

	view, err := h.services.StagingService.Remove(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		writeError(w, r, err, "error removing staged file")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func fileIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, raw)
	}
	return index, nil
}

// readStagedFiles turns the "file" parts of a multipart body into staged
// files, in upload order.
func (h *Handler) readStagedFiles(w http.ResponseWriter, r *http.Request) ([]models.StagedFile, error) {
	if h.maxUploadSize > 0 {
		if r.ContentLength > h.maxUploadSize {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, h.maxUploadSize)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[formFileField]
	files := make([]models.StagedFile, 0, len(headers))
	for _, fh := range headers {
		part, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
		}
		payload, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
		}

		files = append(files, staging.NewStagedFile(fh.Filename, payload, fh.Header.Get("Content-Type"), ""))
	}

	return files, nil
}
