package handler

import (
	"log/slog"
	"net/http"

	"github.com/iconidentify/tunelink/internal/domain"
)

// LegacyHandler serves the key-protected routes kept for older music-bot
// deployments. The secret itself is checked by middleware.SecretAuth before
// these handlers run.
type LegacyHandler struct {
	svc    MediaService
	logger *slog.Logger
}

// NewLegacyHandler creates a new legacy handler.
func NewLegacyHandler(svc MediaService, logger *slog.Logger) *LegacyHandler {
	return &LegacyHandler{
		svc:    svc,
		logger: logger,
	}
}

// StreamResponse is the stream-focused payload of /api/stream.
type StreamResponse struct {
	Title     *string `json:"title"`
	Duration  *int64  `json:"duration"`
	StreamURL *string `json:"stream_url"`
}

// Get handles GET /api/get?key=&url= and returns the full shaped record.
func (h *LegacyHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Stream handles GET /api/stream?key=&url= — a deprecated alias of Get that
// returns only the playable subset.
func (h *LegacyHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, StreamResponse{
		Title:     rec.Title,
		Duration:  rec.Duration,
		StreamURL: rec.StreamURL,
	})
}

func (h *LegacyHandler) resolve(w http.ResponseWriter, r *http.Request) (*domain.MediaRecord, bool) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "Missing YouTube URL")
		return nil, false
	}

	rec, err := h.svc.Resolve(r.Context(), url)
	if err != nil {
		h.logger.Error("legacy resolution failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return rec, true
}
