package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"rolodex/internal/contact/models"
	"rolodex/pkg/platform/sentinel"
)

// InMemory keeps contacts in a mutex-guarded map with a monotonically
// assigned id, mirroring the Postgres store's serial column. Results are
// ordered by id so pagination is stable.
type InMemory struct {
	mu       sync.RWMutex
	contacts map[int64]models.Contact
	nextID   int64
}

func NewInMemory() *InMemory {
	return &InMemory{contacts: make(map[int64]models.Contact), nextID: 1}
}

func (s *InMemory) Create(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = s.nextID
	s.nextID++
	s.contacts[contact.ID] = *contact
	return nil
}

// FindByID looks up a contact by the composite (id, username) key. A contact
// owned by another user is reported as not found.
func (s *InMemory) FindByID(_ context.Context, username string, id int64) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contact, ok := s.contacts[id]
	if !ok || contact.Username != username {
		return nil, sentinel.ErrNotFound
	}
	return &contact, nil
}

func (s *InMemory) Update(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.contacts[contact.ID]
	if !ok || existing.Username != contact.Username {
		return sentinel.ErrNotFound
	}
	s.contacts[contact.ID] = *contact
	return nil
}

func (s *InMemory) Delete(_ context.Context, username string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact, ok := s.contacts[id]
	if !ok || contact.Username != username {
		return sentinel.ErrNotFound
	}
	delete(s.contacts, id)
	return nil
}

func (s *InMemory) Search(_ context.Context, username string, filter models.SearchFilter, limit, offset int) ([]*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.match(username, filter)
	if offset >= len(matched) {
		return []*models.Contact{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *InMemory) Count(_ context.Context, username string, filter models.SearchFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.match(username, filter)), nil
}

func (s *InMemory) match(username string, filter models.SearchFilter) []*models.Contact {
	matched := make([]*models.Contact, 0)
	for id := range s.contacts {
		contact := s.contacts[id]
		if contact.Username != username || !matches(&contact, filter) {
			continue
		}
		c := contact
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func matches(contact *models.Contact, filter models.SearchFilter) bool {
	if filter.Name != "" {
		name := strings.ToLower(filter.Name)
		first := strings.ToLower(contact.FirstName)
		last := strings.ToLower(contact.LastName)
		if !strings.Contains(first, name) && !strings.Contains(last, name) {
			return false
		}
	}
	if filter.Email != "" && !strings.Contains(strings.ToLower(contact.Email), strings.ToLower(filter.Email)) {
		return false
	}
	if filter.Phone != "" && !strings.Contains(contact.Phone, filter.Phone) {
		return false
	}
	return true
}
