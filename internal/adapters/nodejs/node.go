package nodejs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extq/internal/core/ports"
)

// NodeID is the unique identifier for the library loader Graft node.
const NodeID graft.ID = "adapter.library_loader"

func init() {
	graft.Register(graft.Node[ports.LibraryLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LibraryLoader, error) {
			return NewLoader(), nil
		},
	})
}
