package github

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/extq/internal/adapters/logger"
	"go.trai.ch/extq/internal/core/ports"
)

// NodeID is the unique identifier for the release finder Graft node.
const NodeID graft.ID = "adapter.release_finder"

// TokenEnv names the environment variable holding an optional API token.
const TokenEnv = "GITHUB_TOKEN"

func init() {
	graft.Register(graft.Node[ports.ReleaseFinder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseFinder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFinder(log, WithToken(os.Getenv(TokenEnv))), nil
		},
	})
}
