// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgr/internal/core/domain"
)

// Source is a package source. Each capability is optional and queried explicitly;
// the boolean result reports whether the source offers it.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Metadata returns the version lookup capability.
	Metadata() (MetadataResource, bool)

	// DependencyInfo returns the dependency lookup capability.
	DependencyInfo() (DependencyInfoResource, bool)

	// Content returns the package content capability.
	Content() (ContentResource, bool)
}

// MetadataResource looks up package versions.
type MetadataResource interface {
	// LatestVersions returns the highest known version for each requested id.
	// Ids the source does not know are absent from the result.
	LatestVersions(
		ctx context.Context,
		ids []string,
		includePrerelease, includeUnlisted bool,
	) (map[string]*semver.Version, error)
}

// DependencyInfoResource looks up dependency information.
type DependencyInfoResource interface {
	// ResolveDependencies returns the dependency closure of the given identities for a framework.
	// An empty result means the source has nothing to contribute.
	ResolveDependencies(
		ctx context.Context,
		identities []domain.Identity,
		framework string,
		includePrerelease bool,
	) ([]domain.DependencyInfo, error)
}

// ContentResource opens package content.
type ContentResource interface {
	// OpenContent opens the content stream of a package. The caller closes it.
	OpenContent(ctx context.Context, id domain.Identity) (io.ReadCloser, error)
}
