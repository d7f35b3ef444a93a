// Package query decides whether an input is a direct locator or a free-text
// search phrase and resolves either into a canonical media record.
package query

import (
	"context"
	"log/slog"
	"strings"

	"github.com/iconidentify/tunelink/internal/domain"
	"github.com/iconidentify/tunelink/internal/resolver"
)

const (
	// defaultSearchLimit applies when the caller does not specify one.
	defaultSearchLimit = 5

	// maxSearchLimit is the most hits a single search request may return.
	maxSearchLimit = 25
)

// Service classifies inputs and resolves them through a Resolver. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	resolver resolver.Resolver
	logger   *slog.Logger
}

// NewService creates a classifier service.
func NewService(r resolver.Resolver, logger *slog.Logger) *Service {
	return &Service{
		resolver: r,
		logger:   logger,
	}
}

// IsLocator reports whether the input is a direct URL. The scheme token is
// matched case-sensitively; anything else is a search phrase.
func IsLocator(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Resolve turns a locator or free-text query into a full MediaRecord. Search
// phrases resolve through a single best-match search first; locators go
// straight to info resolution.
func (s *Service) Resolve(ctx context.Context, input string) (*domain.MediaRecord, error) {
	locator := input

	if !IsLocator(input) {
		hits, err := s.resolver.Search(ctx, input, 1)
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 || hits[0].WebpageURL == nil {
			return nil, domain.ErrNoResults
		}
		locator = *hits[0].WebpageURL
		s.logger.Debug("search phrase resolved to locator", "input", input, "locator", locator)
	}

	rec, err := s.resolver.Info(ctx, locator)
	if err != nil {
		return nil, err
	}
	if rec.Empty() {
		return nil, domain.NewResolveError("resolve", locator, domain.ErrResolutionFailed)
	}
	return rec, nil
}

// Search returns hits for a free-text query. The limit is clamped to
// [1, maxSearchLimit]; zero or negative means the default.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return s.resolver.Search(ctx, query, limit)
}
