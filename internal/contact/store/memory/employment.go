package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// EmploymentStore keeps employments in a map.
type EmploymentStore struct {
	mu          sync.RWMutex
	employments map[id.EmploymentID]*models.Employment
	ids         nextID
}

func NewEmploymentStore() *EmploymentStore {
	return &EmploymentStore{employments: make(map[id.EmploymentID]*models.Employment)}
}

func (s *EmploymentStore) Save(_ context.Context, employment *models.Employment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if employment.ID == 0 {
		employment.ID = id.EmploymentID(s.ids.take())
	} else if _, ok := s.employments[employment.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *employment
	s.employments[employment.ID] = &copied
	return nil
}

func (s *EmploymentStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.Employment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var employments []*models.Employment
	for _, employment := range s.employments {
		if employment.ContactID == contactID {
			copied := *employment
			employments = append(employments, &copied)
		}
	}
	sort.Slice(employments, func(i, j int) bool { return employments[i].ID < employments[j].ID })
	return employments, nil
}

func (s *EmploymentStore) DeleteByID(_ context.Context, employmentID id.EmploymentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employments[employmentID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.employments, employmentID)
	return nil
}
