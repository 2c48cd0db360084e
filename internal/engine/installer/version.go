package installer

import (
	"context"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// VersionResolver finds the highest available version of a package across sources.
type VersionResolver struct {
	sources []ports.Source
	logger  ports.Logger
}

// NewVersionResolver creates a VersionResolver over the given sources.
func NewVersionResolver(sources []ports.Source, logger ports.Logger) *VersionResolver {
	return &VersionResolver{
		sources: sources,
		logger:  logger,
	}
}

// GetLatestVersion queries every source offering metadata and returns the highest version found.
// The boolean result is false when no source knows the package.
func (r *VersionResolver) GetLatestVersion(
	ctx context.Context,
	packageID string,
	rctx domain.ResolutionContext,
) (*semver.Version, bool, error) {
	// One slot per source, so the result never depends on completion order.
	found := make([]*semver.Version, len(r.sources))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, src := range r.sources {
		meta, ok := src.Metadata()
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			versions, err := meta.LatestVersions(
				groupCtx,
				[]string{packageID},
				rctx.IncludePrerelease,
				rctx.IncludeUnlisted,
			)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "failed to query latest version"), "source", src.Name())
				return zerr.With(err, "package", packageID)
			}
			found[i] = lookupVersion(versions, packageID)
			if found[i] == nil {
				r.logger.Debug("source " + src.Name() + " has no version of " + packageID)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	latest := domain.MaxVersion(found...)
	return latest, latest != nil, nil
}

// lookupVersion finds id in versions, preferring an exact key over a case-insensitive match.
func lookupVersion(versions map[string]*semver.Version, id string) *semver.Version {
	if v, ok := versions[id]; ok {
		return v
	}
	keys := make([]string, 0, len(versions))
	for k := range versions {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if strings.EqualFold(k, id) {
			return versions[k]
		}
	}
	return nil
}
