package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolodex/internal/user/models"
	"rolodex/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
}

func (s *InMemorySuite) TestCreateAndFind() {
	user := &models.User{Username: "alice", Name: "Alice", Password: "hash"}
	s.Require().NoError(s.store.Create(s.ctx, user))

	found, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice", found.Name)
}

func (s *InMemorySuite) TestCreateDuplicateConflicts() {
	s.Require().NoError(s.store.Create(s.ctx, &models.User{Username: "alice"}))
	err := s.store.Create(s.ctx, &models.User{Username: "alice"})
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *InMemorySuite) TestFindByToken() {
	s.Require().NoError(s.store.Create(s.ctx, &models.User{Username: "alice", Token: "tok-1"}))
	s.Require().NoError(s.store.Create(s.ctx, &models.User{Username: "bob"}))

	found, err := s.store.FindByToken(s.ctx, "tok-1")
	s.Require().NoError(err)
	s.Equal("alice", found.Username)

	_, err = s.store.FindByToken(s.ctx, "tok-2")
	s.ErrorIs(err, sentinel.ErrNotFound)

	// A logged-out user's empty token never matches an empty probe.
	_, err = s.store.FindByToken(s.ctx, "")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestUpdate() {
	s.Require().NoError(s.store.Create(s.ctx, &models.User{Username: "alice", Name: "Alice"}))

	s.Require().NoError(s.store.Update(s.ctx, &models.User{Username: "alice", Name: "Alice B.", Token: "tok"}))
	found, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice B.", found.Name)
	s.Equal("tok", found.Token)

	err = s.store.Update(s.ctx, &models.User{Username: "nobody"})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestFindReturnsCopy() {
	s.Require().NoError(s.store.Create(s.ctx, &models.User{Username: "alice", Name: "Alice"}))

	found, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	found.Name = "mutated"

	again, err := s.store.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice", again.Name)
}
