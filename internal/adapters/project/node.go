package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgr/internal/core/ports"
)

// NodeID is the unique identifier for the project opener Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[ports.ProjectOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectOpener, error) {
			return Opener{}, nil
		},
	})
}
