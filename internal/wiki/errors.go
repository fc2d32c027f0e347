package wiki

import "errors"

// Domain-level lookup error sentinels.
var (
	// ErrNotFound means the query resolved to no article. This is a valid
	// empty result, not a failure.
	ErrNotFound = errors.New("article not found")

	// ErrUnavailable means a transient network or API failure. Callers may
	// retry the whole interaction; for peer candidates it downgrades to a
	// skip.
	ErrUnavailable = errors.New("wikipedia unavailable")
)
