package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// RestrictionStore keeps estate-wide contact restrictions in a map.
type RestrictionStore struct {
	mu           sync.RWMutex
	restrictions map[id.ContactRestrictionID]*models.ContactRestriction
	ids          nextID
}

func NewRestrictionStore() *RestrictionStore {
	return &RestrictionStore{restrictions: make(map[id.ContactRestrictionID]*models.ContactRestriction)}
}

func (s *RestrictionStore) Save(_ context.Context, restriction *models.ContactRestriction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if restriction.ID == 0 {
		restriction.ID = id.ContactRestrictionID(s.ids.take())
	} else if _, ok := s.restrictions[restriction.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *restriction
	s.restrictions[restriction.ID] = &copied
	return nil
}

func (s *RestrictionStore) FindByContactAndID(_ context.Context, contactID id.ContactID, restrictionID id.ContactRestrictionID) (*models.ContactRestriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if restriction, ok := s.restrictions[restrictionID]; ok && restriction.ContactID == contactID {
		copied := *restriction
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *RestrictionStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.ContactRestriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var restrictions []*models.ContactRestriction
	for _, restriction := range s.restrictions {
		if restriction.ContactID == contactID {
			copied := *restriction
			restrictions = append(restrictions, &copied)
		}
	}
	sort.Slice(restrictions, func(i, j int) bool { return restrictions[i].ID < restrictions[j].ID })
	return restrictions, nil
}

func (s *RestrictionStore) DeleteByID(_ context.Context, restrictionID id.ContactRestrictionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restrictions[restrictionID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.restrictions, restrictionID)
	return nil
}
