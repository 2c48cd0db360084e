package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the project manifest inside a project directory.
const ManifestFile = "pkgr.project.yaml"

// Manifest is the persisted project state.
type Manifest struct {
	Name            string          `yaml:"name"`
	TargetFramework string          `yaml:"targetFramework,omitempty"`
	Packages        []PackageRecord `yaml:"packages"`
}

// PackageRecord is one installed package in the manifest.
type PackageRecord struct {
	ID       string `yaml:"id"`
	Version  string `yaml:"version"`
	Checksum string `yaml:"checksum,omitempty"`
}

// manifestStore persists a Manifest as YAML.
type manifestStore struct {
	path     string
	mu       sync.RWMutex
	manifest Manifest
}

func newManifestStore(path string) (*manifestStore, error) {
	s := &manifestStore{path: filepath.Clean(path)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *manifestStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read project manifest")
	}

	if len(data) == 0 {
		return nil
	}

	if err := yaml.Unmarshal(data, &s.manifest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse project manifest"), "path", s.path)
	}

	return nil
}

// save must be called with mu held.
func (s *manifestStore) save() error {
	data, err := yaml.Marshal(&s.manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal project manifest")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create project directory")
	}

	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write project manifest")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.Wrap(err, "failed to replace project manifest")
	}

	return nil
}

// snapshot returns a copy of the manifest.
func (s *manifestStore) snapshot() Manifest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.manifest
	m.Packages = append([]PackageRecord(nil), s.manifest.Packages...)
	return m
}

// update applies fn to the manifest and persists the result. The in-memory state is
// rolled back when fn or the write fails.
func (s *manifestStore) update(fn func(m *Manifest) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.manifest
	before.Packages = append([]PackageRecord(nil), s.manifest.Packages...)

	if err := fn(&s.manifest); err != nil {
		s.manifest = before
		return err
	}
	if err := s.save(); err != nil {
		s.manifest = before
		return err
	}
	return nil
}
