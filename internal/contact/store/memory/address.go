package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// AddressStore keeps contact addresses in a map.
type AddressStore struct {
	mu        sync.RWMutex
	addresses map[id.ContactAddressID]*models.ContactAddress
	ids       nextID
}

func NewAddressStore() *AddressStore {
	return &AddressStore{addresses: make(map[id.ContactAddressID]*models.ContactAddress)}
}

func (s *AddressStore) Save(_ context.Context, address *models.ContactAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if address.ID == 0 {
		address.ID = id.ContactAddressID(s.ids.take())
	} else if _, ok := s.addresses[address.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *address
	s.addresses[address.ID] = &copied
	return nil
}

func (s *AddressStore) FindByContactAndID(_ context.Context, contactID id.ContactID, addressID id.ContactAddressID) (*models.ContactAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if address, ok := s.addresses[addressID]; ok && address.ContactID == contactID {
		copied := *address
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *AddressStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.ContactAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var addresses []*models.ContactAddress
	for _, address := range s.addresses {
		if address.ContactID == contactID {
			copied := *address
			addresses = append(addresses, &copied)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}

func (s *AddressStore) DeleteByID(_ context.Context, addressID id.ContactAddressID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[addressID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.addresses, addressID)
	return nil
}
