package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DependencyBehavior selects which satisfying version the solver prefers for a dependency.
type DependencyBehavior string

const (
	// DependencyBehaviorIgnore skips dependencies and resolves only the target.
	DependencyBehaviorIgnore DependencyBehavior = "ignore"
	// DependencyBehaviorLowest prefers the lowest satisfying version.
	DependencyBehaviorLowest DependencyBehavior = "lowest"
	// DependencyBehaviorHighestPatch prefers the highest patch of the lowest satisfying major.minor.
	DependencyBehaviorHighestPatch DependencyBehavior = "highest-patch"
	// DependencyBehaviorHighestMinor prefers the highest minor of the lowest satisfying major.
	DependencyBehaviorHighestMinor DependencyBehavior = "highest-minor"
	// DependencyBehaviorHighest prefers the highest satisfying version.
	DependencyBehaviorHighest DependencyBehavior = "highest"
)

// ParseDependencyBehavior converts a string to a DependencyBehavior, ignoring case.
// An empty string yields DependencyBehaviorLowest.
func ParseDependencyBehavior(s string) (DependencyBehavior, error) {
	switch b := DependencyBehavior(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return DependencyBehaviorLowest, nil
	case DependencyBehaviorIgnore, DependencyBehaviorLowest, DependencyBehaviorHighestPatch,
		DependencyBehaviorHighestMinor, DependencyBehaviorHighest:
		return b, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownDependencyBehavior, "failed to parse dependency behavior"), "behavior", s)
	}
}

// ResolutionContext carries the per-operation resolution settings.
// It is created fresh for every call and never persisted.
type ResolutionContext struct {
	DependencyBehavior DependencyBehavior
	IncludePrerelease  bool
	IncludeUnlisted    bool
}

// DefaultResolutionContext returns the settings used when nothing is configured.
func DefaultResolutionContext() ResolutionContext {
	return ResolutionContext{DependencyBehavior: DependencyBehaviorLowest}
}
