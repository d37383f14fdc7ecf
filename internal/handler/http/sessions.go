package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "error decoding session request")
		return
	}

	view, err := h.services.StagingService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error creating staging session")
		return
	}

	w.Header().Set("Location", "/api/sessions/"+view.ID)
	_, _ = utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.StagingService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error getting staging session")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StagingService.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error closing staging session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.StagingService.Notifications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error draining notifications")
		return
	}
	if notes == nil {
		notes = []models.Notification{}
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) drag(w http.ResponseWriter, r *http.Request) {
	event := models.DragEvent(chi.URLParam(r, "event"))

	view, err := h.services.StagingService.Drag(r.Context(), chi.URLParam(r, "id"), event)
	if err != nil {
		writeError(w, r, err, "error handling drag event")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}
