package referencedata

import (
	"context"
	"sort"
	"strings"
	"sync"

	"contactregistry/pkg/platform/sentinel"
)

// Store is the catalogue lookup collaborator. Implementations return
// sentinel.ErrNotFound for unknown group/code pairs.
type Store interface {
	Lookup(ctx context.Context, group Group, code string) (*Code, error)
	ListByGroup(ctx context.Context, group Group) ([]*Code, error)
}

// InMemory is a map-backed catalogue for unit tests and local development.
type InMemory struct {
	mu    sync.RWMutex
	codes map[Group]map[string]*Code
}

func NewInMemory() *InMemory {
	return &InMemory{codes: make(map[Group]map[string]*Code)}
}

// Put inserts or replaces a catalogue entry. Codes are matched
// case-insensitively on lookup, mirroring the database collation.
func (s *InMemory) Put(code *Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.codes[code.Group]
	if !ok {
		group = make(map[string]*Code)
		s.codes[code.Group] = group
	}
	group[strings.ToUpper(code.Code)] = code
}

func (s *InMemory) Lookup(_ context.Context, group Group, code string) (*Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.codes[group][strings.ToUpper(code)]; ok {
		copied := *entry
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) ListByGroup(_ context.Context, group Group) ([]*Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*Code, 0, len(s.codes[group]))
	for _, entry := range s.codes[group] {
		copied := *entry
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DisplayOrder != entries[j].DisplayOrder {
			return entries[i].DisplayOrder < entries[j].DisplayOrder
		}
		return entries[i].Code < entries[j].Code
	})
	return entries, nil
}
