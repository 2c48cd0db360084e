package domain

import "go.trai.ch/zerr"

var (
	// ErrNoVersionFound is returned when no configured source knows any version of a package.
	ErrNoVersionFound = zerr.New("no version found")

	// ErrNoDependencyInfo is returned when no configured source supplies dependency info for an identity.
	ErrNoDependencyInfo = zerr.New("no dependency info found")

	// ErrUnsatisfiable is returned when no consistent package set satisfies the target and policy.
	ErrUnsatisfiable = zerr.New("unable to resolve dependencies")

	// ErrMissingSourceMapping is returned when an install action has no recorded source.
	// It indicates an internal inconsistency between gathering and planning.
	ErrMissingSourceMapping = zerr.New("missing source mapping for install action")

	// ErrContentUnavailable is returned when the source of an install action cannot provide content.
	ErrContentUnavailable = zerr.New("source does not provide package content")

	// ErrInvalidIdentity is returned when a package id or version cannot be parsed.
	ErrInvalidIdentity = zerr.New("invalid package identity")

	// ErrUnknownDependencyBehavior is returned when a dependency behavior name is not recognized.
	ErrUnknownDependencyBehavior = zerr.New("unknown dependency behavior")

	// ErrUnknownSourceType is returned when a configured source has an unsupported type.
	ErrUnknownSourceType = zerr.New("unknown source type")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrPackageNotInstalled is returned when uninstalling a package the project does not have.
	ErrPackageNotInstalled = zerr.New("package not installed")

	// ErrChecksumMismatch is returned when package content does not match its recorded checksum.
	ErrChecksumMismatch = zerr.New("package content checksum mismatch")

	// ErrContentNotFound is returned when a source has no content for a requested identity.
	ErrContentNotFound = zerr.New("package content not found")
)
