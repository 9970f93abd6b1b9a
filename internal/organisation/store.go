package organisation

import (
	"context"
	"sync"

	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// SummaryStore resolves organisation ids to summaries.
// Implementations return sentinel.ErrNotFound for unknown organisations.
type SummaryStore interface {
	SummaryByID(ctx context.Context, orgID id.OrganisationID) (*Summary, error)
}

// InMemory is a map-backed summary source for unit tests.
type InMemory struct {
	mu        sync.RWMutex
	summaries map[id.OrganisationID]*Summary
}

func NewInMemory() *InMemory {
	return &InMemory{summaries: make(map[id.OrganisationID]*Summary)}
}

func (s *InMemory) Put(summary *Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.OrganisationID] = summary
}

func (s *InMemory) SummaryByID(_ context.Context, orgID id.OrganisationID) (*Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if summary, ok := s.summaries[orgID]; ok {
		copied := *summary
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}
