package installer

import (
	"context"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFramework is used when a project does not declare a target framework.
const DefaultFramework = "any"

// Manager is the entry point for resolving and installing packages into a project.
// It keeps no state between calls; the source list is fixed at construction.
type Manager struct {
	sources   []ports.Source
	solver    ports.Solver
	logger    ports.Logger
	tracer    ports.Tracer
	listeners []ports.ActionListener

	versions *VersionResolver
	gatherer *Gatherer
	engine   *ResolutionEngine
	executor *Executor
}

// NewManager creates a Manager over a copy of sources.
func NewManager(sources []ports.Source, solver ports.Solver, opts ...Option) *Manager {
	m := &Manager{
		sources: slices.Clone(sources),
		solver:  solver,
		logger:  nopLogger{},
		tracer:  nopTracer{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.versions = NewVersionResolver(m.sources, m.logger)
	m.gatherer = NewGatherer(m.sources, m.logger)
	m.engine = NewResolutionEngine(m.solver)
	m.executor = NewExecutor(m.logger, m.listeners...)
	return m
}

// Sources returns the configured sources in priority order.
func (m *Manager) Sources() []ports.Source {
	return slices.Clone(m.sources)
}

// GetLatestVersion returns the highest version of packageID known to any source.
func (m *Manager) GetLatestVersion(
	ctx context.Context,
	packageID string,
	rctx domain.ResolutionContext,
) (*semver.Version, bool, error) {
	ctx, span := m.tracer.Start(ctx, "latest", ports.WithAttribute("package", packageID))
	defer span.End()

	v, ok, err := m.versions.GetLatestVersion(ctx, packageID, rctx)
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	return v, ok, nil
}

// InstallLatest installs the highest available version of packageID.
func (m *Manager) InstallLatest(
	ctx context.Context,
	project ports.Project,
	packageID string,
	rctx domain.ResolutionContext,
	pctx ports.ProjectContext,
) error {
	v, ok, err := m.GetLatestVersion(ctx, packageID, rctx)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNoVersionFound, "failed to install latest version"), "package", packageID)
	}
	return m.InstallPackage(ctx, project, domain.Identity{ID: packageID, Version: v}, rctx, pctx)
}

// InstallPackage plans and applies the install of identity.
func (m *Manager) InstallPackage(
	ctx context.Context,
	project ports.Project,
	identity domain.Identity,
	rctx domain.ResolutionContext,
	pctx ports.ProjectContext,
) error {
	plan, err := m.PreviewInstall(ctx, project, identity, rctx)
	if err != nil {
		return err
	}
	return m.ExecuteActions(ctx, project, plan, rctx, pctx)
}

// PreviewInstall computes the plan for installing identity without touching the project.
func (m *Manager) PreviewInstall(
	ctx context.Context,
	project ports.Project,
	identity domain.Identity,
	rctx domain.ResolutionContext,
) (*Plan, error) {
	framework := DefaultFramework
	if fw, ok := project.Metadata(ports.MetadataTargetFramework); ok && fw != "" {
		framework = fw
	}

	var pool *CandidatePool
	err := m.phase(ctx, domain.PhaseGathering, func(ctx context.Context) error {
		var err error
		pool, err = m.gatherer.Gather(ctx, identity, framework)
		if err != nil {
			return err
		}
		if pool.Len() == 0 {
			err := zerr.With(zerr.Wrap(domain.ErrNoDependencyInfo, "failed to gather dependency info"), "package", identity.String())
			return zerr.With(err, "framework", framework)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var resolved []domain.Identity
	var installed []domain.InstalledReference
	err = m.phase(ctx, domain.PhaseResolving, func(ctx context.Context) error {
		var err error
		installed, err = project.InstalledPackages(ctx)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to list installed packages"), "project", project.Name())
		}
		resolved, err = m.engine.Resolve(ctx, identity, pool, installed, rctx.DependencyBehavior)
		return err
	})
	if err != nil {
		return nil, err
	}

	var plan *Plan
	err = m.phase(ctx, domain.PhasePlanning, func(context.Context) error {
		var err error
		plan, err = BuildPlan(installed, resolved, pool)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ExecuteActions applies a previously computed plan to the project.
func (m *Manager) ExecuteActions(
	ctx context.Context,
	project ports.Project,
	plan *Plan,
	_ domain.ResolutionContext,
	pctx ports.ProjectContext,
) error {
	err := m.phase(ctx, domain.PhaseExecuting, func(ctx context.Context) error {
		return m.executor.Execute(ctx, project, plan, pctx)
	})
	if err != nil {
		return err
	}
	m.logger.Debug("phase " + string(domain.PhaseCompleted))
	return nil
}

func (m *Manager) phase(ctx context.Context, phase domain.Phase, fn func(context.Context) error) error {
	ctx, span := m.tracer.Start(ctx, string(phase))
	defer span.End()
	m.logger.Debug("phase " + string(phase))

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		m.logger.Debug("phase " + string(domain.PhaseFailed))
		return err
	}
	return nil
}
