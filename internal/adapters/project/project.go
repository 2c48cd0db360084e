// Package project implements ports.Project for a project stored in a directory.
// Installed packages are recorded in pkgr.project.yaml and their content is kept
// under packages/<id>.<version>/.
package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PackagesDir holds the installed package content.
	PackagesDir = "packages"
	// ContentFile is the file name of a package's content inside its directory.
	ContentFile = "content"
	// MetadataName is the metadata key returning the project name.
	MetadataName = "Name"
)

// Project is a directory-backed project.
type Project struct {
	dir   string
	store *manifestStore
}

var _ ports.Project = (*Project)(nil)

// Open loads the project in dir. A directory without a manifest is an empty project
// named after the directory.
func Open(dir string) (*Project, error) {
	store, err := newManifestStore(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, zerr.With(err, "project", dir)
	}
	if store.manifest.Name == "" {
		store.manifest.Name = filepath.Base(filepath.Clean(dir))
	}
	return &Project{dir: dir, store: store}, nil
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.store.snapshot().Name
}

// Dir returns the project directory.
func (p *Project) Dir() string {
	return p.dir
}

// Metadata returns a project property.
func (p *Project) Metadata(key string) (string, bool) {
	m := p.store.snapshot()
	switch key {
	case ports.MetadataTargetFramework:
		return m.TargetFramework, m.TargetFramework != ""
	case MetadataName:
		return m.Name, true
	default:
		return "", false
	}
}

// InstalledPackages returns the recorded packages in manifest order.
func (p *Project) InstalledPackages(ctx context.Context) ([]domain.InstalledReference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := p.store.snapshot()
	refs := make([]domain.InstalledReference, 0, len(m.Packages))
	for _, rec := range m.Packages {
		ident, err := domain.NewIdentity(rec.ID, rec.Version)
		if err != nil {
			return nil, zerr.With(err, "manifest", p.store.path)
		}
		refs = append(refs, domain.InstalledReference{Identity: ident})
	}
	return refs, nil
}

// InstallPackage writes content to the package directory and records it.
func (p *Project) InstallPackage(ctx context.Context, id domain.Identity, content io.Reader, pctx ports.ProjectContext) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateID(id.ID); err != nil {
		return err
	}

	dir := p.packageDir(id)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create package directory"), "package", id.String())
	}

	checksum, err := writeContent(filepath.Join(dir, ContentFile), content)
	if err != nil {
		_ = os.RemoveAll(dir)
		return zerr.With(err, "package", id.String())
	}

	err = p.store.update(func(m *Manifest) error {
		rec := PackageRecord{ID: id.ID, Version: id.Version.Original(), Checksum: checksum}
		if i := slices.IndexFunc(m.Packages, matches(id)); i >= 0 {
			m.Packages[i] = rec
			return nil
		}
		m.Packages = append(m.Packages, rec)
		return nil
	})
	if err != nil {
		return zerr.With(err, "package", id.String())
	}

	logTo(pctx, domain.LogLevelDebug, "installed package", "package", id.String(), "checksum", checksum)
	return nil
}

// UninstallPackage removes the package directory and its record.
func (p *Project) UninstallPackage(ctx context.Context, id domain.Identity, pctx ports.ProjectContext) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateID(id.ID); err != nil {
		return err
	}

	err := p.store.update(func(m *Manifest) error {
		i := slices.IndexFunc(m.Packages, matches(id))
		if i < 0 {
			err := zerr.With(zerr.Wrap(domain.ErrPackageNotInstalled, "failed to uninstall package"), "package", id.String())
			return zerr.With(err, "project", m.Name)
		}
		m.Packages = slices.Delete(m.Packages, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}

	if err := os.RemoveAll(p.packageDir(id)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove package directory"), "package", id.String())
	}

	logTo(pctx, domain.LogLevelDebug, "uninstalled package", "package", id.String())
	return nil
}

// ContentPath returns the path of an installed package's content.
func (p *Project) ContentPath(id domain.Identity) string {
	return filepath.Join(p.packageDir(id), ContentFile)
}

func (p *Project) packageDir(id domain.Identity) string {
	return filepath.Join(p.dir, PackagesDir, strings.ToLower(id.ID)+"."+id.Version.String())
}

func matches(id domain.Identity) func(PackageRecord) bool {
	return func(rec PackageRecord) bool {
		if !strings.EqualFold(rec.ID, id.ID) {
			return false
		}
		v, err := semver.NewVersion(rec.Version)
		return err == nil && v.Equal(id.Version)
	}
}

// writeContent copies content to path and returns its xxh64 hex digest.
func writeContent(path string, content io.Reader) (string, error) {
	//nolint:gosec // Path is derived from the project directory
	f, err := os.Create(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to create package content")
	}

	digest := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(f, digest), content); err != nil {
		_ = f.Close()
		return "", zerr.Wrap(err, "failed to write package content")
	}
	if err := f.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to close package content")
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func logTo(pctx ports.ProjectContext, level domain.LogLevel, msg string, args ...any) {
	if pctx != nil {
		pctx.Log(level, msg, args...)
	}
}

// Opener implements ports.ProjectOpener for directory projects.
type Opener struct{}

var _ ports.ProjectOpener = Opener{}

// Open opens the project in dir.
func (Opener) Open(dir string) (ports.Project, error) {
	return Open(dir)
}
