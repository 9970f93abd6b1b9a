package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// PrisonerContactStore keeps relationship records in a map.
type PrisonerContactStore struct {
	mu            sync.RWMutex
	relationships map[id.PrisonerContactID]*models.PrisonerContact
	ids           nextID
}

func NewPrisonerContactStore() *PrisonerContactStore {
	return &PrisonerContactStore{relationships: make(map[id.PrisonerContactID]*models.PrisonerContact)}
}

func (s *PrisonerContactStore) Save(_ context.Context, relationship *models.PrisonerContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if relationship.ID == 0 {
		relationship.ID = id.PrisonerContactID(s.ids.take())
	} else if _, ok := s.relationships[relationship.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *relationship
	s.relationships[relationship.ID] = &copied
	return nil
}

func (s *PrisonerContactStore) FindByID(_ context.Context, relationshipID id.PrisonerContactID) (*models.PrisonerContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if relationship, ok := s.relationships[relationshipID]; ok {
		copied := *relationship
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *PrisonerContactStore) FindAllByPrisoner(_ context.Context, prisonerNumber string) ([]*models.PrisonerContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var relationships []*models.PrisonerContact
	for _, relationship := range s.relationships {
		if relationship.PrisonerNumber == prisonerNumber {
			copied := *relationship
			relationships = append(relationships, &copied)
		}
	}
	sort.Slice(relationships, func(i, j int) bool { return relationships[i].ID < relationships[j].ID })
	return relationships, nil
}

// PrisonerContactRestrictionStore keeps relationship restrictions in a map.
type PrisonerContactRestrictionStore struct {
	mu           sync.RWMutex
	restrictions map[id.PrisonerContactRestrictionID]*models.PrisonerContactRestriction
	ids          nextID
}

func NewPrisonerContactRestrictionStore() *PrisonerContactRestrictionStore {
	return &PrisonerContactRestrictionStore{
		restrictions: make(map[id.PrisonerContactRestrictionID]*models.PrisonerContactRestriction),
	}
}

func (s *PrisonerContactRestrictionStore) Save(_ context.Context, restriction *models.PrisonerContactRestriction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if restriction.ID == 0 {
		restriction.ID = id.PrisonerContactRestrictionID(s.ids.take())
	} else if _, ok := s.restrictions[restriction.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *restriction
	s.restrictions[restriction.ID] = &copied
	return nil
}

func (s *PrisonerContactRestrictionStore) FindByRelationshipAndID(_ context.Context, relationshipID id.PrisonerContactID, restrictionID id.PrisonerContactRestrictionID) (*models.PrisonerContactRestriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if restriction, ok := s.restrictions[restrictionID]; ok && restriction.PrisonerContactID == relationshipID {
		copied := *restriction
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *PrisonerContactRestrictionStore) FindAllByRelationship(_ context.Context, relationshipID id.PrisonerContactID) ([]*models.PrisonerContactRestriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var restrictions []*models.PrisonerContactRestriction
	for _, restriction := range s.restrictions {
		if restriction.PrisonerContactID == relationshipID {
			copied := *restriction
			restrictions = append(restrictions, &copied)
		}
	}
	sort.Slice(restrictions, func(i, j int) bool { return restrictions[i].ID < restrictions[j].ID })
	return restrictions, nil
}

func (s *PrisonerContactRestrictionStore) DeleteByID(_ context.Context, restrictionID id.PrisonerContactRestrictionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restrictions[restrictionID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.restrictions, restrictionID)
	return nil
}
