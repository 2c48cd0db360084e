package installer

import (
	"context"
	"fmt"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Gatherer collects dependency info for a target from all sources into a CandidatePool.
type Gatherer struct {
	sources []ports.Source
	logger  ports.Logger
}

// NewGatherer creates a Gatherer over the given sources.
func NewGatherer(sources []ports.Source, logger ports.Logger) *Gatherer {
	return &Gatherer{
		sources: sources,
		logger:  logger,
	}
}

// Gather queries every source offering dependency info for the transitive closure of
// identity under framework. Sources are queried concurrently and merged in configuration
// order, so for a duplicate (id, version) the earliest configured source wins.
func (g *Gatherer) Gather(ctx context.Context, identity domain.Identity, framework string) (*CandidatePool, error) {
	perSource := make([][]domain.DependencyInfo, len(g.sources))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, src := range g.sources {
		resource, ok := src.DependencyInfo()
		if !ok {
			continue
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			infos, err := resource.ResolveDependencies(
				groupCtx,
				[]domain.Identity{identity},
				framework,
				// Prerelease dependencies are always collected; the solver filters them.
				true,
			)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "failed to gather dependency info"), "source", src.Name())
				return zerr.With(err, "package", identity.String())
			}
			perSource[i] = infos
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	pool := NewCandidatePool()
	for i, infos := range perSource {
		if len(infos) == 0 {
			continue
		}
		var added int
		for _, info := range infos {
			if pool.Add(info, g.sources[i]) {
				added++
			}
		}
		g.logger.Debug(fmt.Sprintf("gathered %d new candidates from source %s", added, g.sources[i].Name()))
	}
	return pool, nil
}
