// Package solver implements ports.Solver with a backtracking search over the candidate pool.
package solver

import (
	"context"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Solver picks one version per package such that every dependency range is satisfied.
type Solver struct{}

var _ ports.Solver = (*Solver)(nil)

// New creates a Solver.
func New() *Solver {
	return &Solver{}
}

// Resolve fixes the targets and resolves their dependencies breadth first.
// The result is ordered dependencies first, targets last.
func (s *Solver) Resolve(
	ctx context.Context,
	targets []domain.Identity,
	pool []domain.DependencyInfo,
	installed []domain.InstalledReference,
	behavior domain.DependencyBehavior,
) ([]domain.Identity, error) {
	if behavior == domain.DependencyBehaviorIgnore {
		return slices.Clone(targets), nil
	}

	search := newSearch(pool, installed, behavior)

	var pending []domain.Dependency
	for _, target := range targets {
		info, ok := search.lookup(target)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnsatisfiable, "failed to seed resolution"), "reason", "target not in candidate pool")
			return nil, zerr.With(err, "target", target.String())
		}
		search.assign(info)
		pending = append(pending, info.Dependencies...)
	}

	ok, err := search.solve(ctx, pending)
	if err != nil {
		return nil, err
	}
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnsatisfiable, "no consistent package set"), "policy", string(behavior))
		if search.conflict != nil {
			err = zerr.With(err, "package", search.conflict.ID)
			err = zerr.With(err, "range", search.conflict.Range)
		}
		return nil, err
	}

	resolved := make([]domain.Identity, 0, len(search.order))
	for i := len(search.order) - 1; i >= 0; i-- {
		resolved = append(resolved, search.assigned[search.order[i]].Identity)
	}
	return resolved, nil
}

type search struct {
	behavior   domain.DependencyBehavior
	candidates map[domain.InternedString][]domain.DependencyInfo
	installed  map[domain.InternedString]*semver.Version

	assigned map[domain.InternedString]domain.DependencyInfo
	order    []domain.InternedString
	conflict *domain.Dependency
}

func newSearch(pool []domain.DependencyInfo, installed []domain.InstalledReference, behavior domain.DependencyBehavior) *search {
	s := &search{
		behavior:   behavior,
		candidates: make(map[domain.InternedString][]domain.DependencyInfo),
		installed:  make(map[domain.InternedString]*semver.Version, len(installed)),
		assigned:   make(map[domain.InternedString]domain.DependencyInfo),
	}
	for _, info := range pool {
		key := domain.NormalizeID(info.Identity.ID)
		s.candidates[key] = append(s.candidates[key], info)
	}
	for key, infos := range s.candidates {
		slices.SortStableFunc(infos, func(a, b domain.DependencyInfo) int {
			return domain.CompareVersions(a.Identity.Version, b.Identity.Version)
		})
		s.candidates[key] = infos
	}
	for _, ref := range installed {
		s.installed[domain.NormalizeID(ref.Identity.ID)] = ref.Identity.Version
	}
	return s
}

func (s *search) lookup(id domain.Identity) (domain.DependencyInfo, bool) {
	for _, info := range s.candidates[domain.NormalizeID(id.ID)] {
		if info.Identity.Equal(id) {
			return info, true
		}
	}
	return domain.DependencyInfo{}, false
}

func (s *search) assign(info domain.DependencyInfo) {
	key := domain.NormalizeID(info.Identity.ID)
	s.assigned[key] = info
	s.order = append(s.order, key)
}

func (s *search) unassign() {
	last := s.order[len(s.order)-1]
	s.order = s.order[:len(s.order)-1]
	delete(s.assigned, last)
}

func (s *search) solve(ctx context.Context, pending []domain.Dependency) (bool, error) {
	if len(pending) == 0 {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	dep := pending[0]
	rest := pending[1:]
	c, err := dep.Constraint()
	if err != nil {
		return false, err
	}

	key := domain.NormalizeID(dep.ID)
	if chosen, ok := s.assigned[key]; ok {
		if domain.Satisfies(c, chosen.Identity.Version, false) {
			return s.solve(ctx, rest)
		}
		s.conflict = &dep
		return false, nil
	}

	options := s.options(key, c)
	if len(options) == 0 {
		s.conflict = &dep
		return false, nil
	}

	for _, candidate := range options {
		s.assign(candidate)
		next := make([]domain.Dependency, 0, len(rest)+len(candidate.Dependencies))
		next = append(next, rest...)
		next = append(next, candidate.Dependencies...)

		ok, err := s.solve(ctx, next)
		if err != nil || ok {
			return ok, err
		}
		s.unassign()
	}
	return false, nil
}

// options returns the candidates of key satisfying c, in the order the behavior prefers.
func (s *search) options(key domain.InternedString, c *semver.Constraints) []domain.DependencyInfo {
	var satisfying []domain.DependencyInfo
	for _, info := range s.candidates[key] {
		if domain.Satisfies(c, info.Identity.Version, false) {
			satisfying = append(satisfying, info)
		}
	}
	if len(satisfying) == 0 {
		return nil
	}

	ordered := orderByBehavior(satisfying, s.behavior)

	if v, ok := s.installed[key]; ok && v != nil {
		if i := slices.IndexFunc(ordered, func(info domain.DependencyInfo) bool {
			return info.Identity.Version.Equal(v)
		}); i > 0 {
			preferred := ordered[i]
			ordered = slices.Delete(ordered, i, i+1)
			ordered = slices.Insert(ordered, 0, preferred)
		}
	}
	return ordered
}

// orderByBehavior orders ascending candidates by preference.
func orderByBehavior(ascending []domain.DependencyInfo, behavior domain.DependencyBehavior) []domain.DependencyInfo {
	ordered := slices.Clone(ascending)
	lowest := ascending[0].Identity.Version

	switch behavior {
	case domain.DependencyBehaviorHighest:
		slices.Reverse(ordered)
	case domain.DependencyBehaviorHighestMinor:
		ordered = preferGroup(ascending, func(v *semver.Version) bool {
			return v.Major() == lowest.Major()
		})
	case domain.DependencyBehaviorHighestPatch:
		ordered = preferGroup(ascending, func(v *semver.Version) bool {
			return v.Major() == lowest.Major() && v.Minor() == lowest.Minor()
		})
	}
	return ordered
}

// preferGroup puts the members of the group first, highest first, then the rest ascending.
func preferGroup(ascending []domain.DependencyInfo, inGroup func(*semver.Version) bool) []domain.DependencyInfo {
	var group, rest []domain.DependencyInfo
	for _, info := range ascending {
		if inGroup(info.Identity.Version) {
			group = append(group, info)
		} else {
			rest = append(rest, info)
		}
	}
	slices.Reverse(group)
	return append(group, rest...)
}
