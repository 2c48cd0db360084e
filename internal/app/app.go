// Package app implements the application layer for pkgr.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/pkgr/internal/engine/installer"
	"go.trai.ch/pkgr/internal/ui/output"
	"go.trai.ch/zerr"
)

// Logger is the logger the application reports through. It doubles as the
// ProjectContext handed to projects while a plan is applied.
type Logger interface {
	ports.Logger
	ports.ProjectContext
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ProgressRecorder follows plan execution and must be closed once the run ends.
type ProgressRecorder interface {
	ports.ActionListener
	io.Closer
}

// MetricsRecorder counts applied actions and can dump them as text.
type MetricsRecorder interface {
	ports.ActionListener
	WriteText(w io.Writer) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceFactory
	solver       ports.Solver
	opener       ports.ProjectOpener
	logger       Logger
	tracer       ports.Tracer
	progress     ProgressRecorder
	metrics      MetricsRecorder
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceFactory,
	solver ports.Solver,
	opener ports.ProjectOpener,
	log Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		solver:       solver,
		opener:       opener,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
	}
}

// WithProgress registers a recorder notified of every action.
func (a *App) WithProgress(p ProgressRecorder) *App {
	a.progress = p
	return a
}

// WithMetrics registers a metrics recorder notified of every action.
func (a *App) WithMetrics(m MetricsRecorder) *App {
	a.metrics = m
	return a
}

// WithStdout replaces the writer plans and results are printed to.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// Logger returns the application logger.
func (a *App) Logger() Logger {
	return a.logger
}

// ResolveOptions are the resolution settings shared by all commands.
type ResolveOptions struct {
	ConfigPath string
	// Behavior overrides the configured dependency behavior when set.
	Behavior   string
	Prerelease bool
	Unlisted   bool
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	ResolveOptions

	PackageID string
	// Version is installed exactly when set; otherwise the latest version is used.
	Version string
	// ProjectDir overrides the configured project directory.
	ProjectDir string
	DryRun     bool
	// MetricsFile receives the action metrics after a successful install.
	MetricsFile string
}

// session is the per-command state derived from the configuration.
type session struct {
	cfg     *domain.Config
	rctx    domain.ResolutionContext
	manager *installer.Manager
}

func (a *App) open(opts ResolveOptions, listeners ...ports.ActionListener) (*session, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	rctx := cfg.Resolution
	if opts.Behavior != "" {
		behavior, err := domain.ParseDependencyBehavior(opts.Behavior)
		if err != nil {
			return nil, err
		}
		rctx.DependencyBehavior = behavior
	}
	rctx.IncludePrerelease = rctx.IncludePrerelease || opts.Prerelease
	rctx.IncludeUnlisted = rctx.IncludeUnlisted || opts.Unlisted

	srcs, err := a.sources.Build(cfg.Sources)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build package sources")
	}

	manager := installer.NewManager(srcs, a.solver,
		installer.WithLogger(a.logger),
		installer.WithTracer(a.tracer),
		installer.WithListeners(listeners...),
	)
	return &session{cfg: cfg, rctx: rctx, manager: manager}, nil
}

// Latest returns the highest version of packageID available from the configured sources.
func (a *App) Latest(ctx context.Context, packageID string, opts ResolveOptions) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}

	v, ok, err := s.manager.GetLatestVersion(ctx, packageID, s.rctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrNoVersionFound, "failed to look up latest version"), "package", packageID)
	}
	return v.Original(), nil
}

// Install plans the install of a package, prints the plan and applies it unless DryRun is set.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	listeners := []ports.ActionListener{output.NewActionPrinter(a.stdout)}
	if a.progress != nil {
		listeners = append(listeners, a.progress)
		defer func() {
			if err := a.progress.Close(); err != nil {
				a.logger.Warn("failed to close progress recorder: " + err.Error())
			}
		}()
	}
	if a.metrics != nil {
		listeners = append(listeners, a.metrics)
	}

	s, err := a.open(opts.ResolveOptions, listeners...)
	if err != nil {
		return err
	}

	dir := opts.ProjectDir
	if dir == "" {
		dir = s.cfg.ProjectDir
	}
	project, err := a.opener.Open(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open project"), "dir", dir)
	}

	identity, err := a.target(ctx, s, opts)
	if err != nil {
		return err
	}

	plan, err := s.manager.PreviewInstall(ctx, project, identity, s.rctx)
	if err != nil {
		return err
	}
	if err := output.WritePlan(a.stdout, project.Name(), plan); err != nil {
		return zerr.Wrap(err, "failed to print plan")
	}
	if opts.DryRun {
		return nil
	}

	if err := s.manager.ExecuteActions(ctx, project, plan, s.rctx, a.logger); err != nil {
		return err
	}
	a.logger.Info("installed " + identity.String() + " into " + project.Name())

	if opts.MetricsFile != "" && a.metrics != nil {
		return a.writeMetrics(opts.MetricsFile)
	}
	return nil
}

func (a *App) target(ctx context.Context, s *session, opts InstallOptions) (domain.Identity, error) {
	if opts.Version != "" {
		return domain.NewIdentity(opts.PackageID, opts.Version)
	}

	v, ok, err := s.manager.GetLatestVersion(ctx, opts.PackageID, s.rctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok {
		err := zerr.Wrap(domain.ErrNoVersionFound, "failed to pick install target")
		return domain.Identity{}, zerr.With(err, "package", opts.PackageID)
	}
	a.logger.Debug("latest version of " + opts.PackageID + " is " + v.Original())
	return domain.Identity{ID: opts.PackageID, Version: v}, nil
}

func (a *App) writeMetrics(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create metrics directory")
	}
	//nolint:gosec // Path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create metrics file"), "path", path)
	}
	if err := a.metrics.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
