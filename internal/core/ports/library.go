package ports

import (
	"context"

	"go.trai.ch/extq/internal/core/domain"
)

//go:generate mockgen -source=library.go -destination=mocks/mock_library.go -package=mocks

// LibraryResolver returns the filtering library matching an extension ref.
type LibraryResolver interface {
	// Resolve returns a loaded library for ref, e.g. "tags/v10.3.0" or "heads/main".
	Resolve(ctx context.Context, ref string) (Library, error)
}

// LibraryLoader loads a materialized library build.
type LibraryLoader interface {
	Load(ctx context.Context, loc domain.LibraryLocation) (Library, error)
}

// Library is a loaded filtering library bound to one version.
type Library interface {
	Version() string
	// DeserializeEngine restores a filtering engine from its serialized form.
	DeserializeEngine(ctx context.Context, data []byte) (Engine, error)
	// BuildRequest builds a request object from a URL and its referring page.
	BuildRequest(ctx context.Context, url, sourceURL string) (domain.Request, error)
	// ReleaseRequest frees a request built by BuildRequest.
	ReleaseRequest(ctx context.Context, req domain.Request) error
	// Close releases the library runtime.
	Close() error
}

// Engine is a deserialized filtering engine.
type Engine interface {
	UpdateEnv(ctx context.Context, flags domain.EnvironmentFlags) error
	MatchNetwork(ctx context.Context, req domain.Request) ([]domain.Filter, error)
	MatchCosmetic(ctx context.Context, req domain.Request, opts domain.CosmeticOptions) ([]domain.CosmeticMatch, error)
	// Release frees the engine inside the library runtime.
	Release(ctx context.Context) error
}
