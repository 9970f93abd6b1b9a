package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// IdentityStore keeps identity documents in a map.
type IdentityStore struct {
	mu         sync.RWMutex
	identities map[id.ContactIdentityID]*models.ContactIdentity
	ids        nextID
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{identities: make(map[id.ContactIdentityID]*models.ContactIdentity)}
}

func (s *IdentityStore) Save(_ context.Context, identity *models.ContactIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity.ID == 0 {
		identity.ID = id.ContactIdentityID(s.ids.take())
	} else if _, ok := s.identities[identity.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *identity
	s.identities[identity.ID] = &copied
	return nil
}

func (s *IdentityStore) FindByContactAndID(_ context.Context, contactID id.ContactID, identityID id.ContactIdentityID) (*models.ContactIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if identity, ok := s.identities[identityID]; ok && identity.ContactID == contactID {
		copied := *identity
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *IdentityStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.ContactIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var identities []*models.ContactIdentity
	for _, identity := range s.identities {
		if identity.ContactID == contactID {
			copied := *identity
			identities = append(identities, &copied)
		}
	}
	sort.Slice(identities, func(i, j int) bool { return identities[i].ID < identities[j].ID })
	return identities, nil
}

func (s *IdentityStore) DeleteByID(_ context.Context, identityID id.ContactIdentityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.identities[identityID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.identities, identityID)
	return nil
}
