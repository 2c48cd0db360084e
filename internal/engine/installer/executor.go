package installer

import (
	"context"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor applies a Plan to a project, one action at a time.
type Executor struct {
	logger    ports.Logger
	listeners []ports.ActionListener
}

// NewExecutor creates an Executor that notifies listeners around every project mutation.
func NewExecutor(logger ports.Logger, listeners ...ports.ActionListener) *Executor {
	return &Executor{
		logger:    logger,
		listeners: listeners,
	}
}

// Execute applies the plan in order and stops at the first failure. Actions completed
// before the failure stay applied. The project's own error is returned unchanged.
func (e *Executor) Execute(ctx context.Context, project ports.Project, plan *Plan, pctx ports.ProjectContext) error {
	if plan == nil {
		return nil
	}

	content := make([]ports.ContentResource, len(plan.Actions))
	for i, action := range plan.Actions {
		if action.Kind != ActionInstall {
			continue
		}
		if action.Source == nil {
			return missingSource(action.Identity, 0)
		}
		resource, ok := action.Source.Content()
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrContentUnavailable, "failed to prepare install"), "source", action.Source.Name())
			return zerr.With(err, "package", action.Identity.String())
		}
		content[i] = resource
	}

	for i, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch action.Kind {
		case ActionUninstall:
			err = e.uninstall(ctx, project, action, pctx)
		case ActionInstall:
			err = e.install(ctx, project, action, content[i], pctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) uninstall(ctx context.Context, project ports.Project, action Action, pctx ports.ProjectContext) error {
	e.notify(domain.EventUninstalling, action.Identity, project)
	if err := project.UninstallPackage(ctx, action.Identity, pctx); err != nil {
		return err
	}
	e.notify(domain.EventUninstalled, action.Identity, project)
	return nil
}

func (e *Executor) install(
	ctx context.Context,
	project ports.Project,
	action Action,
	resource ports.ContentResource,
	pctx ports.ProjectContext,
) error {
	stream, err := resource.OpenContent(ctx, action.Identity)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to open package content"), "source", action.Source.Name())
		return zerr.With(err, "package", action.Identity.String())
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			e.logger.Warn("failed to close content stream for " + action.Identity.String() + ": " + closeErr.Error())
		}
	}()

	e.notify(domain.EventInstalling, action.Identity, project)
	if err := project.InstallPackage(ctx, action.Identity, stream, pctx); err != nil {
		return err
	}
	e.notify(domain.EventInstalled, action.Identity, project)
	return nil
}

func (e *Executor) notify(kind domain.ActionEventKind, id domain.Identity, project ports.Project) {
	event := domain.ActionEvent{Kind: kind, Identity: id, Project: project.Name()}
	for _, l := range e.listeners {
		l.OnAction(event)
	}
}
