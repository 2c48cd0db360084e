package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgr/cmd/pkgr/commands"
	"go.trai.ch/pkgr/internal/app"
	"go.trai.ch/pkgr/internal/build"
)

type mockApp struct {
	installFunc func(ctx context.Context, opts app.InstallOptions) error
	latestFunc  func(ctx context.Context, packageID string, opts app.ResolveOptions) (string, error)
}

func (m *mockApp) Install(ctx context.Context, opts app.InstallOptions) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Latest(ctx context.Context, packageID string, opts app.ResolveOptions) (string, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, packageID, opts)
	}
	return "", nil
}

type mockLogging struct {
	verbose, json bool
}

func (m *mockLogging) SetVerbose(enable bool) {
	m.verbose = enable
}

func (m *mockLogging) SetJSON(enable bool) {
	m.json = enable
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"install", "Newtonsoft.Json", "13.0.1",
			"-c", "conf/pkgr.yaml",
			"--behavior", "highest-minor",
			"--prerelease", "--unlisted", "--dry-run",
			"--project", "web",
			"--metrics-file", "out.prom",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.InstallOptions{
			ResolveOptions: app.ResolveOptions{
				ConfigPath: "conf/pkgr.yaml",
				Behavior:   "highest-minor",
				Prerelease: true,
				Unlisted:   true,
			},
			PackageID:   "Newtonsoft.Json",
			Version:     "13.0.1",
			ProjectDir:  "web",
			DryRun:      true,
			MetricsFile: "out.prom",
		}, captured)
	})

	t.Run("defaults to latest version", func(t *testing.T) {
		var captured app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, opts app.InstallOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"install", "Serilog"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "Serilog", captured.PackageID)
		assert.Empty(t, captured.Version)
		assert.Equal(t, "pkgr.yaml", captured.ConfigPath)
		assert.False(t, captured.DryRun)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _ app.InstallOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"install", "A"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects missing package", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"install"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		assert.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Preview(t *testing.T) {
	var captured app.InstallOptions
	mock := &mockApp{
		installFunc: func(_ context.Context, opts app.InstallOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"preview", "A", "1.0.0", "-b", "ignore"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.DryRun)
	assert.Equal(t, "1.0.0", captured.Version)
	assert.Equal(t, "ignore", captured.Behavior)
}

func TestCommands_Latest(t *testing.T) {
	mock := &mockApp{
		latestFunc: func(_ context.Context, packageID string, opts app.ResolveOptions) (string, error) {
			assert.Equal(t, "Lib", packageID)
			assert.True(t, opts.Prerelease)
			return "2.0.0-rc.1", nil
		},
	}

	cli := commands.New(mock, nil)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs([]string{"latest", "Lib", "--prerelease"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "Lib 2.0.0-rc.1\n", out.String())
}

func TestCommands_LoggingFlags(t *testing.T) {
	log := &mockLogging{}
	cli := commands.New(&mockApp{}, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"install", "A", "--verbose", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.verbose)
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "pkgr version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out.String())
}
