package installer_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/pkgr/internal/core/ports/mocks"
	"go.trai.ch/pkgr/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

func TestVersionResolver_LatestAcrossSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	s1 := newSource(ctrl, "s1")
	s2 := newSource(ctrl, "s2")

	s1.meta.EXPECT().LatestVersions(gomock.Any(), []string{"Pkg"}, false, false).
		Return(map[string]*semver.Version{"Pkg": semver.MustParse("1.0")}, nil)
	s2.meta.EXPECT().LatestVersions(gomock.Any(), []string{"Pkg"}, false, false).
		Return(map[string]*semver.Version{"Pkg": semver.MustParse("1.2")}, nil)

	r := installer.NewVersionResolver([]ports.Source{s1, s2}, mocks.NewMockLogger(ctrl))
	v, ok, err := r.GetLatestVersion(context.Background(), "Pkg", domain.DefaultResolutionContext())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1.2.0", v.String())
}

func TestVersionResolver_NoSourceKnowsPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	s1 := newSource(ctrl, "s1")
	s1.meta.EXPECT().LatestVersions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]*semver.Version{}, nil)
	s2 := bareSource(ctrl, "s2")

	r := installer.NewVersionResolver([]ports.Source{s1, s2}, logger)
	v, ok, err := r.GetLatestVersion(context.Background(), "Missing", domain.DefaultResolutionContext())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestVersionResolver_CaseInsensitiveKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	s1 := newSource(ctrl, "s1")
	s1.meta.EXPECT().LatestVersions(gomock.Any(), []string{"pkg"}, true, true).
		Return(map[string]*semver.Version{"Pkg": semver.MustParse("2.0.0-beta.1")}, nil)

	rctx := domain.ResolutionContext{
		DependencyBehavior: domain.DependencyBehaviorLowest,
		IncludePrerelease:  true,
		IncludeUnlisted:    true,
	}
	r := installer.NewVersionResolver([]ports.Source{s1}, mocks.NewMockLogger(ctrl))
	v, ok, err := r.GetLatestVersion(context.Background(), "pkg", rctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2.0.0-beta.1", v.String())
}

func TestVersionResolver_SourceErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	s1 := newSource(ctrl, "broken")
	s1.meta.EXPECT().LatestVersions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	r := installer.NewVersionResolver([]ports.Source{s1}, mocks.NewMockLogger(ctrl))
	_, _, err := r.GetLatestVersion(context.Background(), "Pkg", domain.DefaultResolutionContext())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to query latest version")
	assert.ErrorContains(t, err, "connection refused")
}

func TestVersionResolver_ResultIndependentOfCompletionOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s1 := newSource(ctrl, "s1")
		s2 := newSource(ctrl, "s2")

		s2Done := make(chan struct{})
		s1.meta.EXPECT().LatestVersions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, []string, bool, bool) (map[string]*semver.Version, error) {
				<-s2Done
				return map[string]*semver.Version{"Pkg": semver.MustParse("3.0.0")}, nil
			})
		s2.meta.EXPECT().LatestVersions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, []string, bool, bool) (map[string]*semver.Version, error) {
				defer close(s2Done)
				return map[string]*semver.Version{"Pkg": semver.MustParse("1.0.0")}, nil
			})

		r := installer.NewVersionResolver([]ports.Source{s1, s2}, mocks.NewMockLogger(ctrl))
		v, ok, err := r.GetLatestVersion(context.Background(), "Pkg", domain.DefaultResolutionContext())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "3.0.0", v.String())
	})
}
