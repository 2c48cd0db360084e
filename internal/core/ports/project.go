package ports

import (
	"context"
	"io"

	"go.trai.ch/pkgr/internal/core/domain"
)

// MetadataTargetFramework is the project metadata key naming the framework packages are resolved for.
const MetadataTargetFramework = "TargetFramework"

// Project is the target of install and uninstall actions.
// Implementations are not required to be safe for concurrent mutation.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type Project interface {
	// Name identifies the project in notifications.
	Name() string

	// InstalledPackages returns the installed packages in project order.
	InstalledPackages(ctx context.Context) ([]domain.InstalledReference, error)

	// Metadata returns a project property such as MetadataTargetFramework.
	Metadata(key string) (string, bool)

	// InstallPackage installs a package from its content stream.
	InstallPackage(ctx context.Context, id domain.Identity, content io.Reader, pctx ProjectContext) error

	// UninstallPackage removes an installed package.
	UninstallPackage(ctx context.Context, id domain.Identity, pctx ProjectContext) error
}

// ProjectContext receives progress messages from project operations.
type ProjectContext interface {
	Log(level domain.LogLevel, msg string, args ...any)
}

// ProjectOpener opens the project stored in a directory.
type ProjectOpener interface {
	Open(dir string) (Project, error)
}
