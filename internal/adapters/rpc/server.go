// Package rpc serves the session command surface over HTTP and provides
// the matching client.
package rpc

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/markdown"
	"github.com/renato0307/polka/internal/ports"
)

// maxBodyBytes caps request bodies; notes are the largest payload
const maxBodyBytes = 10 << 20

type errResponse struct {
	Error string `json:"error"`
}

type notesBody struct {
	Markdown string `json:"markdown"`
}

type handler struct {
	client ports.SessionClient
}

// NewRouter mounts the command surface under /api. events, if non-nil, is
// served at GET /api/events.
func NewRouter(client ports.SessionClient, events http.Handler) chi.Router {
	h := &handler{client: client}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/sessions", h.listSessions)
		r.Post("/sessions", h.createSession)
		r.Delete("/sessions/{id}", h.deleteSession)
		r.Put("/sessions/{id}/status", h.updateStatus)
		r.Get("/sessions/{id}/transcript", h.readTranscript)
		r.Post("/sessions/{id}/transcript", h.appendTranscript)
		r.Get("/sessions/{id}/notes", h.readNotes)
		r.Put("/sessions/{id}/notes", h.writeNotes)
		r.Get("/sessions/{id}/notes.html", h.renderNotes)

		if events != nil {
			r.Get("/events", events.ServeHTTP)
		}
	})

	return r
}

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.client.ListSessions(r.Context())
	if err != nil {
		writeError(w, "list sessions", err)
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	session, err := h.client.CreateSession(r.Context(), req)
	if err != nil {
		writeError(w, "create session", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.SessionStatus `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	req := domain.UpdateSessionStatusRequest{ID: chi.URLParam(r, "id"), Status: body.Status}
	if err := h.client.UpdateSessionStatus(r.Context(), req); err != nil {
		writeError(w, "update session status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.client.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) readTranscript(w http.ResponseWriter, r *http.Request) {
	lines, err := h.client.ReadTranscript(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "read transcript", err)
		return
	}
	if lines == nil {
		lines = []domain.TranscriptLine{}
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *handler) appendTranscript(w http.ResponseWriter, r *http.Request) {
	var line domain.TranscriptLine
	if !decodeBody(w, r, &line) {
		return
	}
	if err := h.client.AppendTranscriptLine(r.Context(), chi.URLParam(r, "id"), line); err != nil {
		writeError(w, "append transcript line", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) readNotes(w http.ResponseWriter, r *http.Request) {
	md, err := h.client.ReadNotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "read notes", err)
		return
	}
	writeJSON(w, http.StatusOK, notesBody{Markdown: md})
}

func (h *handler) writeNotes(w http.ResponseWriter, r *http.Request) {
	var body notesBody
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.client.WriteNotes(r.Context(), chi.URLParam(r, "id"), body.Markdown); err != nil {
		writeError(w, "write notes", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) renderNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	md, err := h.client.ReadNotes(r.Context(), id)
	if err != nil {
		writeError(w, "read notes", err)
		return
	}
	page, err := markdown.RenderDocument(id, md)
	if err != nil {
		writeError(w, "render notes", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

// statusFor maps a command error onto an HTTP status
func statusFor(err error) int {
	var verrs validation.Errors
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidTMs),
		errors.As(err, &verrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Logger.Error("Command failed", "op", op, "error", err)
	}
	writeJSON(w, status, errResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error("JSON encode failed", "error", err)
	}
}
