// Package config provides the configuration loader for pkgr.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "pkgr.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the configuration file at path.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	return Load(path)
}

// Load reads a configuration file from the given path and returns a validated domain.Config.
// Relative paths inside the file are resolved against the file's directory.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Pkgrfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return file.toDomain(filepath.Dir(path))
}

func (f *Pkgrfile) toDomain(baseDir string) (*domain.Config, error) {
	behavior, err := domain.ParseDependencyBehavior(f.DependencyBehavior)
	if err != nil {
		return nil, err
	}

	if len(f.Sources) == 0 {
		return nil, invalidConfig("at least one source is required")
	}

	projectDir := f.Project
	if projectDir == "" {
		projectDir = "."
	}

	cfg := &domain.Config{
		ProjectDir: resolvePath(baseDir, projectDir),
		Sources:    make([]domain.SourceConfig, 0, len(f.Sources)),
		Resolution: domain.ResolutionContext{
			DependencyBehavior: behavior,
			IncludePrerelease:  f.IncludePrerelease,
			IncludeUnlisted:    f.IncludeUnlisted,
		},
	}

	names := make(map[string]bool, len(f.Sources))
	for i, dto := range f.Sources {
		src, err := dto.toDomain(baseDir)
		if err != nil {
			return nil, zerr.With(err, "source_index", i)
		}
		if names[src.Name] {
			return nil, zerr.With(invalidConfig("duplicate source name"), "source", src.Name)
		}
		names[src.Name] = true
		cfg.Sources = append(cfg.Sources, src)
	}

	return cfg, nil
}

func (s SourceDTO) toDomain(baseDir string) (domain.SourceConfig, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return domain.SourceConfig{}, invalidConfig("source name is required")
	}

	src := domain.SourceConfig{
		Name:     name,
		Type:     domain.SourceType(strings.ToLower(s.Type)),
		Bucket:   s.Bucket,
		Prefix:   s.Prefix,
		Region:   s.Region,
		Endpoint: s.Endpoint,
	}

	switch src.Type {
	case domain.SourceTypeDir:
		if s.Path == "" {
			return domain.SourceConfig{}, zerr.With(invalidConfig("dir source requires a path"), "source", name)
		}
		src.Path = resolvePath(baseDir, s.Path)
	case domain.SourceTypeS3:
		if s.Bucket == "" {
			return domain.SourceConfig{}, zerr.With(invalidConfig("s3 source requires a bucket"), "source", name)
		}
	default:
		err := zerr.With(zerr.Wrap(domain.ErrUnknownSourceType, "failed to validate config"), "source", name)
		return domain.SourceConfig{}, zerr.With(err, "type", s.Type)
	}

	return src, nil
}

func invalidConfig(reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "failed to validate config"), "reason", reason)
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
