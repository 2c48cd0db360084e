// Package installer plans and applies package installs across multiple sources.
package installer

import (
	"iter"

	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
)

// CandidatePool is the deduplicated set of dependency infos gathered from all sources.
// Entries are keyed by (id, version) only; the first source to supply a key keeps it.
type CandidatePool struct {
	index map[domain.IdentityKey]int
	items []candidate
}

type candidate struct {
	info   domain.DependencyInfo
	source ports.Source
}

// NewCandidatePool creates an empty pool.
func NewCandidatePool() *CandidatePool {
	return &CandidatePool{
		index: make(map[domain.IdentityKey]int),
	}
}

// Add records info as supplied by source. It reports false and keeps the existing
// entry when the pool already holds the same (id, version).
func (p *CandidatePool) Add(info domain.DependencyInfo, source ports.Source) bool {
	key := info.Key()
	if _, exists := p.index[key]; exists {
		return false
	}
	p.index[key] = len(p.items)
	p.items = append(p.items, candidate{info: info, source: source})
	return true
}

// Len returns the number of entries.
func (p *CandidatePool) Len() int {
	return len(p.items)
}

// SourceOf returns the source recorded for the identity.
func (p *CandidatePool) SourceOf(id domain.Identity) (ports.Source, bool) {
	i, ok := p.index[id.Key()]
	if !ok {
		return nil, false
	}
	return p.items[i].source, true
}

// Infos returns the entries in insertion order.
func (p *CandidatePool) Infos() []domain.DependencyInfo {
	infos := make([]domain.DependencyInfo, len(p.items))
	for i, c := range p.items {
		infos[i] = c.info
	}
	return infos
}

// All returns an iterator over the entries and their sources in insertion order.
func (p *CandidatePool) All() iter.Seq2[domain.DependencyInfo, ports.Source] {
	return func(yield func(domain.DependencyInfo, ports.Source) bool) {
		for _, c := range p.items {
			if !yield(c.info, c.source) {
				return
			}
		}
	}
}
