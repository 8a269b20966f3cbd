package world

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modkit/internal/core/ports"
)

// NodeID is the graft node providing the world loader.
const NodeID graft.ID = "adapter.world_loader"

func init() {
	graft.Register(graft.Node[ports.WorldLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorldLoader, error) {
			return NewLoader(), nil
		},
	})
}
