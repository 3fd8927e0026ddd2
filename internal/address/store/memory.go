package store

import (
	"context"
	"sort"
	"sync"

	"rolodex/internal/address/models"
	"rolodex/pkg/platform/sentinel"
)

// InMemory keeps addresses in a mutex-guarded map with a monotonically
// assigned id, ordered by id for stable pagination.
type InMemory struct {
	mu        sync.RWMutex
	addresses map[int64]models.Address
	nextID    int64
}

func NewInMemory() *InMemory {
	return &InMemory{addresses: make(map[int64]models.Address), nextID: 1}
}

func (s *InMemory) Create(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	address.ID = s.nextID
	s.nextID++
	s.addresses[address.ID] = *address
	return nil
}

// FindByID looks up an address by the composite (contact_id, id) key. An
// address under a different contact is reported as not found.
func (s *InMemory) FindByID(_ context.Context, contactID, addressID int64) (*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	address, ok := s.addresses[addressID]
	if !ok || address.ContactID != contactID {
		return nil, sentinel.ErrNotFound
	}
	return &address, nil
}

func (s *InMemory) Update(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.addresses[address.ID]
	if !ok || existing.ContactID != address.ContactID {
		return sentinel.ErrNotFound
	}
	s.addresses[address.ID] = *address
	return nil
}

func (s *InMemory) Delete(_ context.Context, contactID, addressID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	address, ok := s.addresses[addressID]
	if !ok || address.ContactID != contactID {
		return sentinel.ErrNotFound
	}
	delete(s.addresses, addressID)
	return nil
}

func (s *InMemory) ListByContact(_ context.Context, contactID int64, limit, offset int) ([]*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.forContact(contactID)
	if offset >= len(matched) {
		return []*models.Address{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *InMemory) CountByContact(_ context.Context, contactID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forContact(contactID)), nil
}

func (s *InMemory) forContact(contactID int64) []*models.Address {
	matched := make([]*models.Address, 0)
	for id := range s.addresses {
		address := s.addresses[id]
		if address.ContactID != contactID {
			continue
		}
		a := address
		matched = append(matched, &a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}
