package ports

import "context"

// ContentCache retrieves URL contents, keeping a local copy of remote resources.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ContentCache interface {
	// Fetch returns the bytes behind url. file:// URLs are read directly;
	// anything else is downloaded once and served from disk afterwards.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Path returns the cache entry location for url.
	Path(url string) string
}
