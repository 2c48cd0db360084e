package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Source is a package source reading a feed through a Backend.
// It offers metadata, dependency info and content.
type Source struct {
	name    string
	backend Backend
	logger  ports.Logger

	loadGroup singleflight.Group
	mu        sync.RWMutex
	index     *Index
}

var (
	_ ports.Source                 = (*Source)(nil)
	_ ports.MetadataResource       = (*Source)(nil)
	_ ports.DependencyInfoResource = (*Source)(nil)
	_ ports.ContentResource        = (*Source)(nil)
)

// NewSource creates a feed source. The index is read on first use and cached.
func NewSource(name string, backend Backend, logger ports.Logger) *Source {
	return &Source{
		name:    name,
		backend: backend,
		logger:  logger,
	}
}

// Name returns the configured source name.
func (s *Source) Name() string {
	return s.name
}

// Metadata returns the metadata capability.
func (s *Source) Metadata() (ports.MetadataResource, bool) {
	return s, true
}

// DependencyInfo returns the dependency info capability.
func (s *Source) DependencyInfo() (ports.DependencyInfoResource, bool) {
	return s, true
}

// Content returns the content capability.
func (s *Source) Content() (ports.ContentResource, bool) {
	return s, true
}

// loadIndex returns the cached index, coalescing concurrent first loads.
func (s *Source) loadIndex(ctx context.Context) (*Index, error) {
	s.mu.RLock()
	ix := s.index
	s.mu.RUnlock()
	if ix != nil {
		return ix, nil
	}

	// The load is shared by every waiter and outlives a cancelled caller.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loadGroup.DoChan(IndexFile, func() (any, error) {
		s.mu.RLock()
		cached := s.index
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		rc, err := s.backend.Open(loadCtx, IndexFile)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read feed index")
		}
		loaded, err := ParseIndex(data)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.index = loaded
		s.mu.Unlock()

		s.logger.Debug(fmt.Sprintf("loaded %d index entries from %s", loaded.Len(), s.backend))
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, zerr.With(res.Err, "source", s.name)
		}
		return res.Val.(*Index), nil
	}
}

// LatestVersions returns the highest version of each known id that passes the filters.
// Unknown ids are absent from the result.
func (s *Source) LatestVersions(
	ctx context.Context,
	ids []string,
	includePrerelease, includeUnlisted bool,
) (map[string]*semver.Version, error) {
	ix, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*semver.Version, len(ids))
	for _, id := range ids {
		entries := ix.Versions(id)
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if !includeUnlisted && !e.Listed {
				continue
			}
			if !includePrerelease && e.Identity.Version.Prerelease() != "" {
				continue
			}
			result[id] = e.Identity.Version
			break
		}
	}
	return result, nil
}

// ResolveDependencies returns the dependency closure of identities for framework.
// Every index version satisfying a dependency range is included, breadth first.
// Unknown identities contribute nothing.
func (s *Source) ResolveDependencies(
	ctx context.Context,
	identities []domain.Identity,
	framework string,
	includePrerelease bool,
) ([]domain.DependencyInfo, error) {
	ix, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	var (
		result []domain.DependencyInfo
		queue  []Entry
		seen   = make(map[domain.IdentityKey]bool)
	)
	enqueue := func(e Entry) {
		key := e.Identity.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		queue = append(queue, e)
	}

	for _, id := range identities {
		if e, ok := ix.Lookup(id); ok {
			enqueue(e)
		}
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e := queue[0]
		queue = queue[1:]

		deps := e.DependenciesFor(framework)
		result = append(result, domain.DependencyInfo{Identity: e.Identity, Dependencies: deps})

		for _, dep := range deps {
			c, err := dep.Constraint()
			if err != nil {
				return nil, err
			}
			for _, candidate := range ix.Versions(dep.ID) {
				v := candidate.Identity.Version
				if v.Prerelease() != "" && !includePrerelease {
					continue
				}
				if domain.Satisfies(c, v, includePrerelease) {
					enqueue(candidate)
				}
			}
		}
	}
	return result, nil
}

// OpenContent opens the content of id. When the index records a checksum the content
// is verified before it is returned.
func (s *Source) OpenContent(ctx context.Context, id domain.Identity) (io.ReadCloser, error) {
	ix, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := ix.Lookup(id)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrContentNotFound, "failed to locate package content"), "package", id.String())
		return nil, zerr.With(err, "source", s.name)
	}

	rc, err := s.backend.Open(ctx, entry.Content)
	if err != nil {
		return nil, err
	}
	if entry.Checksum == "" {
		return rc, nil
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package content"), "package", id.String())
	}
	if err := verifyChecksum(data, entry.Checksum); err != nil {
		return nil, zerr.With(zerr.With(err, "package", id.String()), "source", s.name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Checksum returns the xxh64 hex digest used in feed indexes.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func verifyChecksum(data []byte, want string) error {
	expected, err := strconv.ParseUint(want, 16, 64)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid checksum in feed index"), "checksum", want)
	}
	if got := xxhash.Sum64(data); got != expected {
		err := zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "failed to verify package content"), "expected", want)
		return zerr.With(err, "actual", fmt.Sprintf("%016x", got))
	}
	return nil
}
