package solver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgr/internal/core/ports"
)

// NodeID is the unique identifier for the solver Graft node.
const NodeID graft.ID = "adapter.solver"

func init() {
	graft.Register(graft.Node[ports.Solver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Solver, error) {
			return New(), nil
		},
	})
}
