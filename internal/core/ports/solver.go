package ports

import (
	"context"

	"go.trai.ch/pkgr/internal/core/domain"
)

// Solver selects one consistent package set from a candidate pool.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type Solver interface {
	// Resolve returns the identities that satisfy the targets and their dependencies,
	// with at most one version per package id.
	// It returns an error when no such set exists.
	Resolve(
		ctx context.Context,
		targets []domain.Identity,
		pool []domain.DependencyInfo,
		installed []domain.InstalledReference,
		behavior domain.DependencyBehavior,
	) ([]domain.Identity, error)
}
