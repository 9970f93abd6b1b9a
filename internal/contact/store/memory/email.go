package memory

import (
	"context"
	"sort"
	"sync"

	"contactregistry/internal/contact/models"
	id "contactregistry/pkg/domain"
	"contactregistry/pkg/platform/sentinel"
)

// EmailStore keeps contact emails in a map.
type EmailStore struct {
	mu     sync.RWMutex
	emails map[id.ContactEmailID]*models.ContactEmail
	ids    nextID
}

func NewEmailStore() *EmailStore {
	return &EmailStore{emails: make(map[id.ContactEmailID]*models.ContactEmail)}
}

func (s *EmailStore) Save(_ context.Context, email *models.ContactEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if email.ID == 0 {
		email.ID = id.ContactEmailID(s.ids.take())
	} else if _, ok := s.emails[email.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *email
	s.emails[email.ID] = &copied
	return nil
}

func (s *EmailStore) FindByContactAndID(_ context.Context, contactID id.ContactID, emailID id.ContactEmailID) (*models.ContactEmail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if email, ok := s.emails[emailID]; ok && email.ContactID == contactID {
		copied := *email
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *EmailStore) FindAllByContact(_ context.Context, contactID id.ContactID) ([]*models.ContactEmail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var emails []*models.ContactEmail
	for _, email := range s.emails {
		if email.ContactID == contactID {
			copied := *email
			emails = append(emails, &copied)
		}
	}
	sort.Slice(emails, func(i, j int) bool { return emails[i].ID < emails[j].ID })
	return emails, nil
}

func (s *EmailStore) DeleteByID(_ context.Context, emailID id.ContactEmailID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[emailID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.emails, emailID)
	return nil
}
