package project_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgr/internal/adapters/project"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/pkgr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.ManifestFile), []byte(body), 0o600))
}

func installedStrings(t *testing.T, p ports.Project) []string {
	t.Helper()
	refs, err := p.InstalledPackages(context.Background())
	require.NoError(t, err)
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.Identity.String()
	}
	return out
}

func TestOpen_EmptyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "webapp")
	require.NoError(t, os.Mkdir(dir, 0o750))

	p, err := project.Open(dir)
	require.NoError(t, err)

	assert.Equal(t, "webapp", p.Name())
	assert.Empty(t, installedStrings(t, p))

	_, ok := p.Metadata(ports.MetadataTargetFramework)
	assert.False(t, ok)
}

func TestOpen_ReadsManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `name: app
targetFramework: net8.0
packages:
  - id: Newtonsoft.Json
    version: 13.0.1
  - id: Serilog
    version: 3.1.0-beta
`)

	p, err := project.Open(dir)
	require.NoError(t, err)

	assert.Equal(t, "app", p.Name())
	fw, ok := p.Metadata(ports.MetadataTargetFramework)
	assert.True(t, ok)
	assert.Equal(t, "net8.0", fw)
	assert.Equal(t, []string{"Newtonsoft.Json@13.0.1", "Serilog@3.1.0-beta"}, installedStrings(t, p))
}

func TestOpen_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "packages: [")

	_, err := project.Open(dir)
	assert.ErrorContains(t, err, "failed to parse project manifest")
}

func TestInstalledPackages_InvalidVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "name: app\npackages:\n  - id: A\n    version: banana\n")

	p, err := project.Open(dir)
	require.NoError(t, err)

	_, err = p.InstalledPackages(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidIdentity)
}

func TestInstallPackage_WritesContentAndRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	pctx := mocks.NewMockProjectContext(ctrl)
	pctx.EXPECT().Log(domain.LogLevelDebug, "installed package", gomock.Any()).Times(1)

	dir := t.TempDir()
	p, err := project.Open(dir)
	require.NoError(t, err)

	id := domain.MustIdentity("Lib", "1.2.0")
	require.NoError(t, p.InstallPackage(context.Background(), id, strings.NewReader("payload"), pctx))

	data, err := os.ReadFile(p.ContentPath(id))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, filepath.Join(dir, "packages", "lib.1.2.0", "content"), p.ContentPath(id))

	// A fresh open sees the persisted record.
	reopened, err := project.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lib@1.2.0"}, installedStrings(t, reopened))

	raw, err := os.ReadFile(filepath.Join(dir, project.ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "checksum:")
}

func TestInstallPackage_SameIdentityReplacesRecord(t *testing.T) {
	p, err := project.Open(t.TempDir())
	require.NoError(t, err)

	id := domain.MustIdentity("Lib", "1.2.0")
	require.NoError(t, p.InstallPackage(context.Background(), id, strings.NewReader("one"), nil))
	require.NoError(t, p.InstallPackage(context.Background(), domain.MustIdentity("lib", "1.2.0"), strings.NewReader("two"), nil))

	assert.Equal(t, []string{"lib@1.2.0"}, installedStrings(t, p))
}

func TestInstallPackage_ReadFailureLeavesNoTrace(t *testing.T) {
	dir := t.TempDir()
	p, err := project.Open(dir)
	require.NoError(t, err)

	id := domain.MustIdentity("Lib", "1.0.0")
	err = p.InstallPackage(context.Background(), id, iotest.ErrReader(errors.New("disk gone")), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write package content")

	assert.NoDirExists(t, filepath.Dir(p.ContentPath(id)))
	assert.Empty(t, installedStrings(t, p))
}

func TestInstallPackage_RejectsEscapingID(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "app")
	p, err := project.Open(dir)
	require.NoError(t, err)

	id := domain.Identity{ID: "../../evil", Version: semver.MustParse("1.0.0")}
	err = p.InstallPackage(context.Background(), id, strings.NewReader("x"), nil)
	require.ErrorIs(t, err, domain.ErrInvalidIdentity)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)

	err = p.UninstallPackage(context.Background(), id, nil)
	require.ErrorIs(t, err, domain.ErrInvalidIdentity)
}

func TestInstallPackage_Cancelled(t *testing.T) {
	p, err := project.Open(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = p.InstallPackage(ctx, domain.MustIdentity("Lib", "1.0.0"), strings.NewReader("x"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUninstallPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	pctx := mocks.NewMockProjectContext(ctrl)
	pctx.EXPECT().Log(domain.LogLevelDebug, gomock.Any(), gomock.Any()).AnyTimes()

	p, err := project.Open(t.TempDir())
	require.NoError(t, err)

	a := domain.MustIdentity("A", "1.0.0")
	b := domain.MustIdentity("B", "2.0.0")
	require.NoError(t, p.InstallPackage(context.Background(), a, strings.NewReader("a"), pctx))
	require.NoError(t, p.InstallPackage(context.Background(), b, strings.NewReader("b"), pctx))

	require.NoError(t, p.UninstallPackage(context.Background(), a, pctx))

	assert.Equal(t, []string{"B@2.0.0"}, installedStrings(t, p))
	assert.NoFileExists(t, p.ContentPath(a))
	assert.FileExists(t, p.ContentPath(b))
}

func TestUninstallPackage_NotInstalled(t *testing.T) {
	p, err := project.Open(t.TempDir())
	require.NoError(t, err)

	err = p.UninstallPackage(context.Background(), domain.MustIdentity("A", "1.0.0"), nil)
	require.ErrorIs(t, err, domain.ErrPackageNotInstalled)
}

func TestOpener(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "name: svc\n")

	p, err := project.Opener{}.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "svc", p.Name())
}
