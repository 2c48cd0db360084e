package installer

import (
	"context"
	"errors"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// ResolutionEngine selects a consistent package set for a target using a Solver.
type ResolutionEngine struct {
	solver ports.Solver
}

// NewResolutionEngine creates a ResolutionEngine backed by solver.
func NewResolutionEngine(solver ports.Solver) *ResolutionEngine {
	return &ResolutionEngine{solver: solver}
}

// Resolve runs the solver for target over the pool, honoring the installed set and behavior.
// The returned set holds at most one version per package id.
func (e *ResolutionEngine) Resolve(
	ctx context.Context,
	target domain.Identity,
	pool *CandidatePool,
	installed []domain.InstalledReference,
	behavior domain.DependencyBehavior,
) ([]domain.Identity, error) {
	resolved, err := e.solver.Resolve(ctx, []domain.Identity{target}, pool.Infos(), installed, behavior)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, domain.ErrUnsatisfiable) {
			err = errors.Join(domain.ErrUnsatisfiable, err)
		}
		wrapped := zerr.With(zerr.Wrap(err, "failed to resolve target"), "target", target.String())
		return nil, zerr.With(wrapped, "policy", string(behavior))
	}
	if len(resolved) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrUnsatisfiable, "solver returned no packages"), "target", target.String())
		return nil, zerr.With(err, "policy", string(behavior))
	}

	// Each id appears once, even when the solver repeats an identical identity.
	seen := make(map[domain.InternedString]domain.Identity, len(resolved))
	for _, id := range resolved {
		key := domain.NormalizeID(id.ID)
		if prev, ok := seen[key]; ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnsatisfiable, "package resolved more than once"), "package", id.ID)
			return nil, zerr.With(err, "versions", prev.Version.String()+", "+id.Version.String())
		}
		seen[key] = id
	}
	return resolved, nil
}
