package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// PhoneStore keeps phone rows in a map.
type PhoneStore struct {
	mu     sync.RWMutex
	phones map[id.ContactPhoneID]*models.ContactPhone
	ids    nextID
}

func NewPhoneStore() *PhoneStore {
	return &PhoneStore{phones: make(map[id.ContactPhoneID]*models.ContactPhone)}
}

func (s *PhoneStore) Save(_ context.Context, phone *models.ContactPhone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if phone.ID == 0 {
		phone.ID = id.ContactPhoneID(s.ids.take())
	} else if _, ok := s.phones[phone.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *phone
	s.phones[phone.ID] = &copied
	return nil
}

func (s *PhoneStore) FindByID(_ context.Context, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if phone, ok := s.phones[phoneID]; ok {
		copied := *phone
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *PhoneStore) FindByContactAndID(_ context.Context, contactID id.ContactID, phoneID id.ContactPhoneID) (*models.ContactPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if phone, ok := s.phones[phoneID]; ok && phone.ContactID == contactID {
		copied := *phone
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *PhoneStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.ContactPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var phones []*models.ContactPhone
	for _, phone := range s.phones {
		if phone.ContactID == contactID {
			copied := *phone
			phones = append(phones, &copied)
		}
	}
	sort.Slice(phones, func(i, j int) bool { return phones[i].ID < phones[j].ID })
	return phones, nil
}

func (s *PhoneStore) DeleteByID(_ context.Context, phoneID id.ContactPhoneID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.phones[phoneID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.phones, phoneID)
	return nil
}
