package domain

import "errors"

// Domain errors.
var (
	// ErrInvalidAPIKey is returned when the presented API secret is wrong.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrMissingURL is returned when a request omits the url parameter.
	ErrMissingURL = errors.New("missing URL")

	// ErrMissingQuery is returned when a search request omits the query.
	ErrMissingQuery = errors.New("missing search query")

	// ErrNoResults is returned when a search yields zero hits.
	ErrNoResults = errors.New("no results found")

	// ErrNoEntries is returned when a playlist-shaped result contains no
	// usable entries.
	ErrNoEntries = errors.New("no entries found")

	// ErrResolutionFailed is returned when the extractor produced nothing
	// usable for a locator.
	ErrResolutionFailed = errors.New("resolution failed")

	// ErrNotAuthorized is returned when a non-owner invokes a privileged
	// bot command.
	ErrNotAuthorized = errors.New("not authorized")
)

// ResolveError wraps an extractor failure with operation context.
type ResolveError struct {
	Op    string
	Input string
	Err   error
}

func (e *ResolveError) Error() string {
	if e.Input != "" {
		return e.Op + " [" + e.Input + "]: " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// NewResolveError creates a new ResolveError.
func NewResolveError(op, input string, err error) *ResolveError {
	return &ResolveError{
		Op:    op,
		Input: input,
		Err:   err,
	}
}
