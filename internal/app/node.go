package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgr/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/feed"               //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/project"            //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/solver"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgr/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			feed.NodeID,
			solver.NodeID,
			project.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	slv, err := graft.Dep[ports.Solver](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.ProjectOpener](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[*progrock.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	mrec, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sources, slv, opener, log, tracer).
		WithProgress(rec).
		WithMetrics(mrec), nil
}
