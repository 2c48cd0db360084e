// Package domain contains the core domain models for package install planning.
package domain

import (
	"cmp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Identity is a package id together with one exact version.
// Ids compare case-insensitively; versions follow semantic versioning precedence.
type Identity struct {
	ID      string
	Version *semver.Version
}

// IdentityKey is the comparable form of an Identity, suitable as a map key.
// Two identities that are Equal always produce the same key.
type IdentityKey struct {
	ID      InternedString
	Version string
}

// NewIdentity parses version and returns the identity for id at that version.
// Ids name a directory inside a project, so they may not contain path separators
// or parent references.
func NewIdentity(id, version string) (Identity, error) {
	if err := ValidateID(id); err != nil {
		return Identity{}, err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		err := zerr.With(zerr.Wrap(ErrInvalidIdentity, "failed to parse package version"), "reason", err.Error())
		err = zerr.With(err, "package", id)
		return Identity{}, zerr.With(err, "version", version)
	}
	return Identity{ID: id, Version: v}, nil
}

// ValidateID returns ErrInvalidIdentity when id is empty or could escape a directory.
func ValidateID(id string) error {
	if reason := checkID(id); reason != "" {
		err := zerr.With(zerr.Wrap(ErrInvalidIdentity, "failed to parse package id"), "reason", reason)
		return zerr.With(err, "package", id)
	}
	return nil
}

func checkID(id string) string {
	switch {
	case strings.TrimSpace(id) == "":
		return "empty package id"
	case strings.ContainsAny(id, `/\`):
		return "package id contains a path separator"
	case id == "." || strings.Contains(id, ".."):
		return "package id contains a parent reference"
	default:
		return ""
	}
}

// MustIdentity is like NewIdentity but panics on invalid input.
// It is intended for tests and static tables.
func MustIdentity(id, version string) Identity {
	ident, err := NewIdentity(id, version)
	if err != nil {
		panic(err)
	}
	return ident
}

// NormalizeID returns the canonical interned form of a package id.
func NormalizeID(id string) InternedString {
	return NewInternedString(strings.ToLower(id))
}

// Key returns the comparable key of the identity.
func (i Identity) Key() IdentityKey {
	var version string
	if i.Version != nil {
		version = i.Version.String()
	}
	return IdentityKey{ID: NormalizeID(i.ID), Version: version}
}

// SameID reports whether both identities name the same package, ignoring case and version.
func (i Identity) SameID(o Identity) bool {
	return strings.EqualFold(i.ID, o.ID)
}

// Equal reports whether both identities name the same package at the same version.
func (i Identity) Equal(o Identity) bool {
	if !i.SameID(o) {
		return false
	}
	if i.Version == nil || o.Version == nil {
		return i.Version == o.Version
	}
	return i.Version.Equal(o.Version)
}

// String returns the "id@version" form.
func (i Identity) String() string {
	if i.Version == nil {
		return i.ID
	}
	return i.ID + "@" + i.Version.Original()
}

// CompareIdentities orders identities by id (case-insensitive) and then by version.
func CompareIdentities(a, b Identity) int {
	if c := cmp.Compare(strings.ToLower(a.ID), strings.ToLower(b.ID)); c != 0 {
		return c
	}
	return CompareVersions(a.Version, b.Version)
}

// CompareVersions orders versions by semantic versioning precedence. A nil version sorts first.
func CompareVersions(a, b *semver.Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(b)
	}
}

// MaxVersion returns the highest of the given versions, ignoring nils.
// It returns nil when no version is given.
func MaxVersion(versions ...*semver.Version) *semver.Version {
	var highest *semver.Version
	for _, v := range versions {
		if v == nil {
			continue
		}
		if highest == nil || v.GreaterThan(highest) {
			highest = v
		}
	}
	return highest
}

// InstalledReference is an identity recorded as installed in a project.
type InstalledReference struct {
	Identity Identity
}
