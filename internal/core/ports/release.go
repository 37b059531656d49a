package ports

import "context"

// ReleaseFinder locates downloadable extension builds.
//
//go:generate mockgen -source=release.go -destination=mocks/mock_release.go -package=mocks
type ReleaseFinder interface {
	// Latest returns the download URL of the first asset of the newest release
	// whose URL contains match.
	Latest(ctx context.Context, releasesURL, match string) (string, error)
}
