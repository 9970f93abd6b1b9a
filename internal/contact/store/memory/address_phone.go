package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// AddressPhoneStore keeps the phone/address link rows in a map.
type AddressPhoneStore struct {
	mu    sync.RWMutex
	links map[id.ContactAddressPhoneID]*models.ContactAddressPhone
	ids   nextID
}

func NewAddressPhoneStore() *AddressPhoneStore {
	return &AddressPhoneStore{links: make(map[id.ContactAddressPhoneID]*models.ContactAddressPhone)}
}

func (s *AddressPhoneStore) Save(_ context.Context, link *models.ContactAddressPhone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if link.ID == 0 {
		link.ID = id.ContactAddressPhoneID(s.ids.take())
	} else if _, ok := s.links[link.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *AddressPhoneStore) FindByID(_ context.Context, linkID id.ContactAddressPhoneID) (*models.ContactAddressPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if link, ok := s.links[linkID]; ok {
		copied := *link
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *AddressPhoneStore) FindAllByAddress(_ context.Context, addressID id.ContactAddressID) ([]*models.ContactAddressPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var links []*models.ContactAddressPhone
	for _, link := range s.links {
		if link.AddressID == addressID {
			copied := *link
			links = append(links, &copied)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (s *AddressPhoneStore) FindAllByPhone(_ context.Context, phoneID id.ContactPhoneID) ([]*models.ContactAddressPhone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var links []*models.ContactAddressPhone
	for _, link := range s.links {
		if link.PhoneID == phoneID {
			copied := *link
			links = append(links, &copied)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (s *AddressPhoneStore) DeleteByID(_ context.Context, linkID id.ContactAddressPhoneID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[linkID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.links, linkID)
	return nil
}
