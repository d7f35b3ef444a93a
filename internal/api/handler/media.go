package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iconidentify/tunelink/internal/domain"
)

// MediaHandler handles the modern metadata endpoints.
type MediaHandler struct {
	svc    MediaService
	logger *slog.Logger
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(svc MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		svc:    svc,
		logger: logger,
	}
}

// SearchResponse contains search results and their count.
type SearchResponse struct {
	Count   int                `json:"count"`
	Results []domain.SearchHit `json:"results"`
}

// Info handles GET /api/info?url=
func (h *MediaHandler) Info(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, domain.ErrMissingURL.Error())
		return
	}

	rec, err := h.svc.Resolve(r.Context(), url)
	if err != nil {
		h.logger.Error("info resolution failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Search handles GET /api/search?q=&limit=
func (h *MediaHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, domain.ErrMissingQuery.Error())
		return
	}

	limit := 0 // service default
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	hits, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		h.logger.Error("search failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Count:   len(hits),
		Results: hits,
	})
}
