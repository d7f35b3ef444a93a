package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iconidentify/tunelink/internal/domain"
)

func TestLegacyHandler_Get(t *testing.T) {
	svc := &mockMediaService{record: fullRecord()}
	h := NewLegacyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/get?key=k&url=https://valid.example/video", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["title"] != "Example Song" {
		t.Errorf("title = %v", body["title"])
	}
	if body["stream_url"] != "https://cdn.example.com/stream.m4a" {
		t.Errorf("stream_url = %v", body["stream_url"])
	}
}

func TestLegacyHandler_Get_MissingURL(t *testing.T) {
	svc := &mockMediaService{record: fullRecord()}
	h := NewLegacyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/get?key=k", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Missing YouTube URL" {
		t.Errorf("error = %q", body["error"])
	}
	if len(svc.resolveIn) != 0 {
		t.Errorf("resolver called %d times, want 0", len(svc.resolveIn))
	}
}

func TestLegacyHandler_Stream(t *testing.T) {
	svc := &mockMediaService{record: fullRecord()}
	h := NewLegacyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/stream?key=k&url=https://valid.example/video", nil)
	w := httptest.NewRecorder()

	h.Stream(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["stream_url"] != "https://cdn.example.com/stream.m4a" {
		t.Errorf("stream_url = %v", body["stream_url"])
	}
	if body["duration"].(float64) != 212 {
		t.Errorf("duration = %v", body["duration"])
	}
	if _, present := body["uploader"]; present {
		t.Error("stream payload should not carry the full record")
	}
}

func TestLegacyHandler_ResolutionFailure(t *testing.T) {
	svc := &mockMediaService{resolveErr: domain.ErrResolutionFailed}
	h := NewLegacyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/get?key=k&url=https://x", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
