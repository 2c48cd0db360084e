package installer_test

import (
	"io"
	"strings"
	"sync"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func id(name, version string) domain.Identity {
	return domain.MustIdentity(name, version)
}

func info(name, version string, deps ...domain.Dependency) domain.DependencyInfo {
	return domain.DependencyInfo{Identity: id(name, version), Dependencies: deps}
}

func installed(ids ...domain.Identity) []domain.InstalledReference {
	refs := make([]domain.InstalledReference, len(ids))
	for i, ident := range ids {
		refs[i] = domain.InstalledReference{Identity: ident}
	}
	return refs
}

// source is a mock source together with its capability mocks.
type source struct {
	*mocks.MockSource
	meta    *mocks.MockMetadataResource
	deps    *mocks.MockDependencyInfoResource
	content *mocks.MockContentResource
}

// newSource builds a mock source exposing all three capabilities.
func newSource(ctrl *gomock.Controller, name string) *source {
	s := &source{
		MockSource: mocks.NewMockSource(ctrl),
		meta:       mocks.NewMockMetadataResource(ctrl),
		deps:       mocks.NewMockDependencyInfoResource(ctrl),
		content:    mocks.NewMockContentResource(ctrl),
	}
	s.EXPECT().Name().Return(name).AnyTimes()
	s.EXPECT().Metadata().Return(s.meta, true).AnyTimes()
	s.EXPECT().DependencyInfo().Return(s.deps, true).AnyTimes()
	s.EXPECT().Content().Return(s.content, true).AnyTimes()
	return s
}

// bareSource builds a mock source without any capability.
func bareSource(ctrl *gomock.Controller, name string) *mocks.MockSource {
	s := mocks.NewMockSource(ctrl)
	s.EXPECT().Name().Return(name).AnyTimes()
	s.EXPECT().Metadata().Return(nil, false).AnyTimes()
	s.EXPECT().DependencyInfo().Return(nil, false).AnyTimes()
	s.EXPECT().Content().Return(nil, false).AnyTimes()
	return s
}

// trackedReader records whether it was closed.
type trackedReader struct {
	io.Reader
	mu     sync.Mutex
	closed bool
}

func newTrackedReader(s string) *trackedReader {
	return &trackedReader{Reader: strings.NewReader(s)}
}

func (r *trackedReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *trackedReader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// eventRecorder collects action events in order.
type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) OnAction(event domain.ActionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, string(event.Kind)+" "+event.Identity.String())
}

func (r *eventRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}
