package ports

import (
	"context"

	"go.trai.ch/extq/internal/core/domain"
)

// ArtifactExtractor pulls an extension build and collects its rule assets.
type ArtifactExtractor interface {
	Pull(ctx context.Context, url string) (*domain.ReleaseArtifact, error)
}
