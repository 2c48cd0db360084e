package domain

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Dependency is a declared requirement on another package.
type Dependency struct {
	// ID is the package id of the dependency.
	ID string

	// Range is a semantic versioning constraint (e.g., ">=1.0.0, <2.0.0").
	// An empty range accepts any version.
	Range string
}

// Constraint parses the dependency range.
func (d Dependency) Constraint() (*semver.Constraints, error) {
	r := d.Range
	if r == "" {
		r = "*"
	}
	c, err := semver.NewConstraint(r)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "invalid dependency range"), "dependency", d.ID)
		return nil, zerr.With(err, "range", d.Range)
	}
	return c, nil
}

// DependencyInfo is an identity together with its declared dependencies for one framework.
// Pools deduplicate on the identity alone; the dependency list is not part of the key.
type DependencyInfo struct {
	Identity     Identity
	Dependencies []Dependency
}

// Key returns the deduplication key of the dependency info.
func (d DependencyInfo) Key() IdentityKey {
	return d.Identity.Key()
}

// Satisfies reports whether v is accepted by c. Constraints without a prerelease
// component reject prerelease versions; when includePrerelease is set such versions
// are judged by their release part instead.
func Satisfies(c *semver.Constraints, v *semver.Version, includePrerelease bool) bool {
	if c.Check(v) {
		return true
	}
	if !includePrerelease || v.Prerelease() == "" {
		return false
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return false
	}
	return c.Check(&release)
}
