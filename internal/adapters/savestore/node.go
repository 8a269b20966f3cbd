package savestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modkit/internal/core/ports"
)

// NodeID is the graft node providing the save store opener.
const NodeID graft.ID = "adapter.save_store"

func init() {
	graft.Register(graft.Node[ports.SaveStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SaveStoreOpener, error) {
			return Opener{}, nil
		},
	})
}
