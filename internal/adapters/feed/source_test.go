package feed_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgr/internal/adapters/feed"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testIndex = `
packages:
  - id: App
    version: 1.0.0
    dependencies:
      net8:
        - id: Json
          range: ">=13.0.0, <14.0.0"
      any:
        - id: Legacy
  - id: Json
    version: 12.0.0
  - id: Json
    version: 13.0.1
    dependencies:
      any:
        - id: Core
          range: "^1.0"
  - id: Json
    version: 13.1.0-beta.1
  - id: Json
    version: 13.2.0
    listed: false
  - id: Core
    version: 1.2.0
    content: core-1.2.0.bin
  - id: Legacy
    version: 0.1.0
  - id: Signed
    version: 1.0.0
    checksum: "CHECKSUM"
`

func newFeed(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func newTestSource(t *testing.T, dir string) *feed.Source {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return feed.NewSource("local", feed.NewDirBackend(dir), logger)
}

func TestSource_Capabilities(t *testing.T) {
	src := newTestSource(t, t.TempDir())
	assert.Equal(t, "local", src.Name())

	_, ok := src.Metadata()
	assert.True(t, ok)
	_, ok = src.DependencyInfo()
	assert.True(t, ok)
	_, ok = src.Content()
	assert.True(t, ok)
}

func TestSource_LatestVersions(t *testing.T) {
	src := newTestSource(t, newFeed(t, map[string]string{feed.IndexFile: testIndex}))
	ctx := context.Background()

	tests := []struct {
		name       string
		prerelease bool
		unlisted   bool
		want       string
	}{
		{name: "listed releases only", want: "13.0.1"},
		{name: "with prerelease", prerelease: true, want: "13.1.0-beta.1"},
		{name: "with unlisted", unlisted: true, want: "13.2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.LatestVersions(ctx, []string{"json", "Missing"}, tt.prerelease, tt.unlisted)
			require.NoError(t, err)
			require.Contains(t, got, "json")
			assert.Equal(t, tt.want, got["json"].String())
			assert.NotContains(t, got, "Missing")
		})
	}
}

func TestSource_ResolveDependencies(t *testing.T) {
	src := newTestSource(t, newFeed(t, map[string]string{feed.IndexFile: testIndex}))
	ctx := context.Background()
	target := domain.MustIdentity("App", "1.0.0")

	infos, err := src.ResolveDependencies(ctx, []domain.Identity{target}, "NET8", false)
	require.NoError(t, err)

	var got []string
	for _, di := range infos {
		got = append(got, di.Identity.String())
	}
	// Unlisted versions stay resolvable as dependencies.
	assert.Equal(t, []string{"App@1.0.0", "Json@13.0.1", "Json@13.2.0", "Core@1.2.0"}, got)
	assert.Equal(t, "Json", infos[0].Dependencies[0].ID)

	infos, err = src.ResolveDependencies(ctx, []domain.Identity{target}, "net6", true)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Legacy@0.1.0", infos[1].Identity.String())

	infos, err = src.ResolveDependencies(ctx, []domain.Identity{domain.MustIdentity("Nope", "1.0.0")}, "any", false)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSource_ResolveDependencies_Prerelease(t *testing.T) {
	index := `
packages:
  - id: Top
    version: 1.0.0
    dependencies:
      any:
        - id: Lib
          range: ">=2.0.0"
  - id: Lib
    version: 2.1.0-rc.1
`
	src := newTestSource(t, newFeed(t, map[string]string{feed.IndexFile: index}))
	target := []domain.Identity{domain.MustIdentity("Top", "1.0.0")}

	infos, err := src.ResolveDependencies(context.Background(), target, "any", false)
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	infos, err = src.ResolveDependencies(context.Background(), target, "any", true)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestSource_OpenContent(t *testing.T) {
	signed := "signed payload"
	index := replaceChecksum(testIndex, feed.Checksum([]byte(signed)))
	dir := newFeed(t, map[string]string{
		feed.IndexFile:     index,
		"core-1.2.0.bin":   "core bytes",
		"signed.1.0.0.pkg": signed,
	})
	src := newTestSource(t, dir)
	ctx := context.Background()

	rc, err := src.OpenContent(ctx, domain.MustIdentity("core", "1.2"))
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "core bytes", string(data))

	rc, err = src.OpenContent(ctx, domain.MustIdentity("Signed", "1.0.0"))
	require.NoError(t, err)
	data, err = io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, signed, string(data))

	_, err = src.OpenContent(ctx, domain.MustIdentity("Legacy", "0.1.0"))
	require.ErrorIs(t, err, domain.ErrContentNotFound)

	_, err = src.OpenContent(ctx, domain.MustIdentity("Ghost", "1.0.0"))
	require.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestSource_OpenContent_ChecksumMismatch(t *testing.T) {
	index := replaceChecksum(testIndex, feed.Checksum([]byte("expected")))
	src := newTestSource(t, newFeed(t, map[string]string{
		feed.IndexFile:     index,
		"signed.1.0.0.pkg": "tampered",
	}))

	_, err := src.OpenContent(context.Background(), domain.MustIdentity("Signed", "1.0.0"))
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
}

func TestSource_MissingIndex(t *testing.T) {
	src := newTestSource(t, t.TempDir())

	_, err := src.LatestVersions(context.Background(), []string{"x"}, false, false)
	require.ErrorIs(t, err, domain.ErrContentNotFound)
}

// countingBackend counts index reads.
type countingBackend struct {
	*feed.DirBackend
	mu    sync.Mutex
	opens map[string]int
}

func (b *countingBackend) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	b.mu.Lock()
	b.opens[name]++
	b.mu.Unlock()
	return b.DirBackend.Open(ctx, name)
}

func TestSource_IndexLoadedOnce(t *testing.T) {
	dir := newFeed(t, map[string]string{feed.IndexFile: testIndex})
	backend := &countingBackend{DirBackend: feed.NewDirBackend(dir), opens: map[string]int{}}

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).Times(1)
	src := feed.NewSource("local", backend, logger)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			_, err := src.LatestVersions(context.Background(), []string{"Json"}, false, false)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Equal(t, 1, backend.opens[feed.IndexFile])
}

// gatedBackend holds index reads until release is closed.
type gatedBackend struct {
	*feed.DirBackend
	release chan struct{}
}

func (b *gatedBackend) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	<-b.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.DirBackend.Open(ctx, name)
}

func TestSource_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	dir := newFeed(t, map[string]string{feed.IndexFile: testIndex})
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	synctest.Test(t, func(t *testing.T) {
		backend := &gatedBackend{DirBackend: feed.NewDirBackend(dir), release: make(chan struct{})}
		src := feed.NewSource("local", backend, logger)

		firstCtx, cancel := context.WithCancel(context.Background())
		firstErr := make(chan error, 1)
		go func() {
			_, err := src.LatestVersions(firstCtx, []string{"Json"}, false, false)
			firstErr <- err
		}()
		synctest.Wait()

		type outcome struct {
			versions map[string]*semver.Version
			err      error
		}
		second := make(chan outcome, 1)
		go func() {
			versions, err := src.LatestVersions(context.Background(), []string{"Json"}, false, false)
			second <- outcome{versions: versions, err: err}
		}()
		synctest.Wait()

		cancel()
		require.ErrorIs(t, <-firstErr, context.Canceled)

		close(backend.release)
		got := <-second
		require.NoError(t, got.err)
		assert.Equal(t, "13.0.1", got.versions["Json"].String())
	})
}

func TestParseIndex_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		index    string
		wantErr  error
		contains string
	}{
		{name: "bad version", index: "packages:\n  - {id: A, version: one}\n", wantErr: domain.ErrInvalidIdentity},
		{name: "missing id", index: "packages:\n  - {version: 1.0.0}\n", wantErr: domain.ErrInvalidIdentity},
		{
			name:     "bad range",
			index:    "packages:\n  - id: A\n    version: 1.0.0\n    dependencies:\n      any: [{id: B, range: banana}]\n",
			contains: "invalid dependency range",
		},
		{name: "not yaml", index: "packages: [", contains: "failed to parse feed index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := feed.ParseIndex([]byte(tt.index))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestParseIndex_DuplicateKeepsFirst(t *testing.T) {
	ix, err := feed.ParseIndex([]byte(`
packages:
  - {id: A, version: 1.0.0, content: first.pkg}
  - {id: a, version: "1.0", content: second.pkg}
  - {id: A, version: 0.9.0}
`))
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())

	entries := ix.Versions("A")
	require.Len(t, entries, 2)
	assert.Equal(t, "0.9.0", entries[0].Identity.Version.String())
	assert.Equal(t, "a.0.9.0.pkg", entries[0].Content)
	assert.Equal(t, "first.pkg", entries[1].Content)
	assert.True(t, entries[1].Listed)
}

func replaceChecksum(index, sum string) string {
	return strings.ReplaceAll(index, "CHECKSUM", sum)
}
