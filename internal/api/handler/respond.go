package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iconidentify/tunelink/internal/domain"
)

// MediaService is the resolution capability the HTTP surface exposes.
type MediaService interface {
	Resolve(ctx context.Context, input string) (*domain.MediaRecord, error)
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
