// Package feed implements package sources backed by a static feed: an index.yaml
// file next to the package content files, stored in a directory or an S3 bucket.
package feed

import (
	"slices"
	"strings"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// IndexFile is the name of the index inside a feed.
const IndexFile = "index.yaml"

// AnyFramework is the dependency group used when a package has no group for the requested framework.
const AnyFramework = "any"

type indexFile struct {
	Packages []packageDTO `yaml:"packages"`
}

type packageDTO struct {
	ID           string                     `yaml:"id"`
	Version      string                     `yaml:"version"`
	Listed       *bool                      `yaml:"listed"`
	Content      string                     `yaml:"content"`
	Checksum     string                     `yaml:"checksum"`
	Dependencies map[string][]dependencyDTO `yaml:"dependencies"`
}

type dependencyDTO struct {
	ID    string `yaml:"id"`
	Range string `yaml:"range"`
}

// Entry is one package version listed in a feed index.
type Entry struct {
	Identity domain.Identity
	Listed   bool

	// Content is the file name of the package content inside the feed.
	Content string

	// Checksum is the optional xxh64 hex digest of the content.
	Checksum string

	// Dependencies are the dependency groups keyed by lowercased framework name.
	Dependencies map[string][]domain.Dependency
}

// DependenciesFor returns the dependencies declared for framework, falling back to the "any" group.
func (e Entry) DependenciesFor(framework string) []domain.Dependency {
	if deps, ok := e.Dependencies[strings.ToLower(framework)]; ok {
		return deps
	}
	return e.Dependencies[AnyFramework]
}

// Index is a parsed feed index. Versions of a package are kept in ascending order.
type Index struct {
	byID map[domain.InternedString][]Entry
	size int
}

// ParseIndex decodes and validates an index.yaml document.
// A repeated (id, version) keeps its first occurrence.
func ParseIndex(data []byte) (*Index, error) {
	var file indexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse feed index")
	}

	ix := &Index{byID: make(map[domain.InternedString][]Entry)}
	seen := make(map[domain.IdentityKey]bool, len(file.Packages))

	for i, dto := range file.Packages {
		entry, err := dto.toEntry()
		if err != nil {
			return nil, zerr.With(err, "index_entry", i)
		}
		key := entry.Identity.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		ix.byID[key.ID] = append(ix.byID[key.ID], entry)
		ix.size++
	}

	for id, entries := range ix.byID {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return domain.CompareVersions(a.Identity.Version, b.Identity.Version)
		})
		ix.byID[id] = entries
	}

	return ix, nil
}

func (dto packageDTO) toEntry() (Entry, error) {
	ident, err := domain.NewIdentity(dto.ID, dto.Version)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Identity:     ident,
		Listed:       dto.Listed == nil || *dto.Listed,
		Content:      dto.Content,
		Checksum:     strings.ToLower(strings.TrimSpace(dto.Checksum)),
		Dependencies: make(map[string][]domain.Dependency, len(dto.Dependencies)),
	}
	if entry.Content == "" {
		entry.Content = strings.ToLower(dto.ID) + "." + ident.Version.String() + ".pkg"
	}

	for framework, deps := range dto.Dependencies {
		group := make([]domain.Dependency, 0, len(deps))
		for _, d := range deps {
			dep := domain.Dependency{ID: d.ID, Range: d.Range}
			if strings.TrimSpace(dep.ID) == "" {
				return Entry{}, zerr.With(zerr.New("dependency id is required"), "package", ident.String())
			}
			if _, err := dep.Constraint(); err != nil {
				return Entry{}, zerr.With(err, "package", ident.String())
			}
			group = append(group, dep)
		}
		entry.Dependencies[strings.ToLower(framework)] = group
	}

	return entry, nil
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return ix.size
}

// Versions returns all entries of a package id in ascending version order.
func (ix *Index) Versions(id string) []Entry {
	return ix.byID[domain.NormalizeID(id)]
}

// Lookup returns the entry of an exact identity.
func (ix *Index) Lookup(id domain.Identity) (Entry, bool) {
	for _, e := range ix.Versions(id.ID) {
		if e.Identity.Equal(id) {
			return e, true
		}
	}
	return Entry{}, false
}
