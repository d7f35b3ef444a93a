package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/iconidentify/tunelink/internal/domain"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

// fullRecord returns a MediaRecord with every field populated.
func fullRecord() *domain.MediaRecord {
	return &domain.MediaRecord{
		ID:         strPtr("dQw4w9WgXcQ"),
		Title:      strPtr("Example Song"),
		Duration:   i64Ptr(212),
		Thumbnail:  strPtr("https://i.ytimg.com/vi/dQw4w9WgXcQ/max.jpg"),
		WebpageURL: strPtr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		StreamURL:  strPtr("https://cdn.example.com/stream.m4a"),
		Uploader:   strPtr("Example Channel"),
		ChannelID:  strPtr("UC123"),
		ViewCount:  i64Ptr(1000000),
		LiveStatus: domain.ParseLiveStatus("not_live"),
	}
}

// mockMediaService is a test implementation of MediaService.
type mockMediaService struct {
	record      *domain.MediaRecord
	resolveErr  error
	hits        []domain.SearchHit
	searchErr   error
	resolveIn   []string
	searchIn    []string
	searchLimit []int
}

func (m *mockMediaService) Resolve(ctx context.Context, input string) (*domain.MediaRecord, error) {
	m.resolveIn = append(m.resolveIn, input)
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	return m.record, nil
}

func (m *mockMediaService) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	m.searchIn = append(m.searchIn, query)
	m.searchLimit = append(m.searchLimit, limit)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.hits, nil
}
