package feed

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgr/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/pkgr/internal/core/ports"
)

// NodeID is the unique identifier for the source factory Graft node.
const NodeID graft.ID = "adapter.feed"

func init() {
	graft.Register(graft.Node[ports.SourceFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceFactory, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
