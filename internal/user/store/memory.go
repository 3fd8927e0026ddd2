package store

import (
	"context"
	"sync"

	"rolodex/internal/user/models"
	"rolodex/pkg/platform/sentinel"
)

// InMemory keeps users in a mutex-guarded map. It backs unit tests and
// DATABASE_URL-less development runs; it intentionally favors clarity over
// performance.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

func (s *InMemory) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return sentinel.ErrConflict
	}
	s.users[user.Username] = *user
	return nil
}

func (s *InMemory) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &user, nil
}

func (s *InMemory) FindByToken(_ context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Token != "" && user.Token == token {
			u := user
			return &u, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; !ok {
		return sentinel.ErrNotFound
	}
	s.users[user.Username] = *user
	return nil
}
