package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/iconidentify/tunelink/internal/domain"
)

// maxSearchResults is the hard ceiling on hits requested from the extractor,
// regardless of what the caller asked for.
const maxSearchResults = 25

// YTDLP resolves media through the yt-dlp binary. Two calls with the same
// locator perform two independent fetches; nothing is cached.
type YTDLP struct {
	bin    string
	run    runner
	logger *slog.Logger
}

// NewYTDLP creates a resolver around the given yt-dlp binary path.
func NewYTDLP(bin string, logger *slog.Logger) *YTDLP {
	return &YTDLP{
		bin:    bin,
		run:    execRunner{},
		logger: logger,
	}
}

// Info implements Resolver. It requests the best audio-capable variant,
// falling back to best overall, and never downloads media.
func (y *YTDLP) Info(ctx context.Context, locator string) (*domain.MediaRecord, error) {
	out, err := y.run.Run(ctx, y.bin, "-J", "--no-playlist", "-f", "bestaudio/best", locator)
	if err != nil {
		return nil, domain.NewResolveError("info", locator, fmt.Errorf("%w: %s", domain.ErrResolutionFailed, extractorError(err)))
	}

	raw, err := decodeRaw(out)
	if err != nil {
		return nil, domain.NewResolveError("info", locator, err)
	}

	// Playlist-shaped output: take the first present entry, drop the rest.
	if raw.Type == "playlist" || len(raw.Entries) > 0 {
		entry := firstPresent(raw.Entries)
		if entry == nil {
			return nil, domain.NewResolveError("info", locator, domain.ErrNoEntries)
		}
		raw = entry
	}

	rec := shape(raw)
	y.logger.Debug("resolved info", "locator", locator, "empty", rec.Empty())
	return rec, nil
}

// Search implements Resolver using the extractor's search pseudo-URL with
// flat output. The requested count is clamped to [1, maxSearchResults].
func (y *YTDLP) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	target := fmt.Sprintf("ytsearch%d:%s", limit, query)
	out, err := y.run.Run(ctx, y.bin, "-J", "--flat-playlist", target)
	if err != nil {
		return nil, domain.NewResolveError("search", query, fmt.Errorf("%w: %s", domain.ErrResolutionFailed, extractorError(err)))
	}

	raw, err := decodeRaw(out)
	if err != nil {
		return nil, domain.NewResolveError("search", query, err)
	}

	hits := make([]domain.SearchHit, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		if entry == nil {
			continue
		}
		hits = append(hits, shapeHit(entry))
	}

	y.logger.Debug("resolved search", "query", query, "limit", limit, "hits", len(hits))
	return hits, nil
}

// decodeRaw parses extractor JSON output; empty or null output means the
// extractor produced nothing at all.
func decodeRaw(out []byte) (*rawInfo, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domain.ErrResolutionFailed
	}

	raw := &rawInfo{}
	if err := json.Unmarshal(trimmed, raw); err != nil {
		return nil, fmt.Errorf("%w: decode extractor output: %v", domain.ErrResolutionFailed, err)
	}
	return raw, nil
}

// firstPresent returns the first non-null entry, or nil if there is none.
func firstPresent(entries []*rawInfo) *rawInfo {
	for _, e := range entries {
		if e != nil {
			return e
		}
	}
	return nil
}

// extractorError renders an exec failure including any stderr the extractor
// wrote, so upstream text reaches the caller verbatim.
func extractorError(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return string(bytes.TrimSpace(exitErr.Stderr))
	}
	return err.Error()
}

// execRunner invokes the binary for real.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}
