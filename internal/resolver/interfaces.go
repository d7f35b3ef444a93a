package resolver

import (
	"context"

	"github.com/iconidentify/tunelink/internal/domain"
)

// Resolver resolves locators and search queries against the external
// extraction engine. Implementations perform network I/O and are safe for
// concurrent use; no caching happens at this layer.
type Resolver interface {
	// Info fetches and shapes metadata for a single locator.
	Info(ctx context.Context, locator string) (*domain.MediaRecord, error)

	// Search returns up to limit hits for a free-text query, best match
	// first. The sequence may be empty; that is not an error here.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

// runner executes the extractor binary and returns its stdout.
// It exists so the adapter can be tested with canned JSON output.
type runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
