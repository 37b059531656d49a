package harness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extq/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/extq/internal/core/ports"
)

// NodeID is the unique identifier for the harness Graft node.
const NodeID graft.ID = "engine.harness"

func init() {
	graft.Register(graft.Node[*Harness]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Harness, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewHarness(tracer), nil
		},
	})
}
