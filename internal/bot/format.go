package bot

import (
	"fmt"
	"strings"

	"github.com/iconidentify/tunelink/internal/domain"
)

// messageChunkSize is the per-message size for outbound text, kept
// comfortably under Telegram's 4096-character limit.
const messageChunkSize = 4000

// Chunk splits s into consecutive pieces of at most size characters,
// preserving order. Chunk boundaries ignore word and line breaks.
func Chunk(s string, size int) []string {
	if size <= 0 || s == "" {
		return nil
	}

	chunks := make([]string, 0, len(s)/size+1)
	for len(s) > size {
		chunks = append(chunks, s[:size])
		s = s[size:]
	}
	return append(chunks, s)
}

// formatDuration renders whole seconds as m:ss or h:mm:ss.
func formatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatRecord renders a resolved record as the bot's detail reply. Absent
// fields produce no line at all.
func formatRecord(rec *domain.MediaRecord) string {
	var b strings.Builder

	if rec.Title != nil {
		fmt.Fprintf(&b, "🎵 %s\n\n", *rec.Title)
	}
	if rec.ID != nil {
		fmt.Fprintf(&b, "🆔 ID: %s\n", *rec.ID)
	}
	if rec.Duration != nil {
		fmt.Fprintf(&b, "⏱ Duration: %s\n", formatDuration(*rec.Duration))
	}
	if rec.Uploader != nil {
		fmt.Fprintf(&b, "👤 Uploader: %s\n", *rec.Uploader)
	}
	if rec.ChannelID != nil {
		fmt.Fprintf(&b, "📺 Channel: %s\n", *rec.ChannelID)
	}
	if rec.ViewCount != nil {
		fmt.Fprintf(&b, "👁 Views: %d\n", *rec.ViewCount)
	}
	if rec.LiveStatus != nil {
		fmt.Fprintf(&b, "🔴 Live: %s\n", *rec.LiveStatus)
	}
	if rec.WebpageURL != nil {
		fmt.Fprintf(&b, "🔗 Page: %s\n", *rec.WebpageURL)
	}
	if rec.StreamURL != nil {
		fmt.Fprintf(&b, "▶️ Stream: %s\n", *rec.StreamURL)
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatHits renders numbered search result lines.
func formatHits(hits []domain.SearchHit) string {
	var b strings.Builder

	for i, hit := range hits {
		title := "(untitled)"
		if hit.Title != nil {
			title = *hit.Title
		}
		fmt.Fprintf(&b, "%d. %s", i+1, title)
		if hit.Duration != nil {
			fmt.Fprintf(&b, " [%s]", formatDuration(*hit.Duration))
		}
		b.WriteString("\n")
		if hit.WebpageURL != nil {
			fmt.Fprintf(&b, "   %s\n", *hit.WebpageURL)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
