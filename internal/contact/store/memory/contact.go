package memory

import (
	"context"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// ContactStore keeps contacts in a map.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[id.ContactID]*models.Contact
	ids      nextID
}

func NewContactStore() *ContactStore {
	return &ContactStore{contacts: make(map[id.ContactID]*models.Contact)}
}

// Save inserts when the id is zero (assigning the next id) and updates
// otherwise. Updating an unknown id returns sentinel.ErrNotFound.
func (s *ContactStore) Save(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if contact.ID == 0 {
		contact.ID = id.ContactID(s.ids.take())
	} else if _, ok := s.contacts[contact.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *contact
	s.contacts[contact.ID] = &copied
	return nil
}

func (s *ContactStore) FindByID(_ context.Context, contactID id.ContactID) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if contact, ok := s.contacts[contactID]; ok {
		copied := *contact
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}
