package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolodex/internal/contact/models"
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

func (s *InMemorySuite) TestCreateAssignsSequentialIDs() {
	a := &models.Contact{Username: "alice", FirstName: "John"}
	b := &models.Contact{Username: "alice", FirstName: "Jane"}
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.Require().NoError(s.store.Create(s.ctx, b))
	s.Equal(a.ID+1, b.ID)
}

func (s *InMemorySuite) TestFindByIDIsOwnerScoped() {
	contact := &models.Contact{Username: "alice", FirstName: "John"}
	s.Require().NoError(s.store.Create(s.ctx, contact))

	found, err := s.store.FindByID(s.ctx, "alice", contact.ID)
	s.Require().NoError(err)
	s.Equal("John", found.FirstName)

	_, err = s.store.FindByID(s.ctx, "bob", contact.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByID(s.ctx, "alice", contact.ID+1)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestUpdateAndDeleteAreOwnerScoped() {
	contact := &models.Contact{Username: "alice", FirstName: "John"}
	s.Require().NoError(s.store.Create(s.ctx, contact))

	hijack := *contact
	hijack.Username = "bob"
	s.ErrorIs(s.store.Update(s.ctx, &hijack), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, "bob", contact.ID), sentinel.ErrNotFound)

	contact.FirstName = "Johnny"
	s.Require().NoError(s.store.Update(s.ctx, contact))
	s.Require().NoError(s.store.Delete(s.ctx, "alice", contact.ID))
	s.ErrorIs(s.store.Delete(s.ctx, "alice", contact.ID), sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestSearchMatchesAndPages() {
	for i := 0; i < 7; i++ {
		s.Require().NoError(s.store.Create(s.ctx, &models.Contact{
			Username:  "alice",
			FirstName: fmt.Sprintf("John%d", i),
			Email:     fmt.Sprintf("john%d@example.com", i),
			Phone:     fmt.Sprintf("081%d", i),
		}))
	}
	s.Require().NoError(s.store.Create(s.ctx, &models.Contact{Username: "bob", FirstName: "John99"}))

	// Name matches either name part, case-insensitively.
	results, err := s.store.Search(s.ctx, "alice", models.SearchFilter{Name: "JOHN"}, 100, 0)
	s.Require().NoError(err)
	s.Len(results, 7)

	count, err := s.store.Count(s.ctx, "alice", models.SearchFilter{Name: "JOHN"})
	s.Require().NoError(err)
	s.Equal(7, count)

	// Limit and offset slice the id-ordered result.
	page, err := s.store.Search(s.ctx, "alice", models.SearchFilter{}, 3, 3)
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Equal("John3", page[0].FirstName)

	// Offset past the end yields an empty page, not an error.
	empty, err := s.store.Search(s.ctx, "alice", models.SearchFilter{}, 3, 50)
	s.Require().NoError(err)
	s.Empty(empty)

	// Email and phone filters are substring matches.
	results, err = s.store.Search(s.ctx, "alice", models.SearchFilter{Email: "john4@"}, 100, 0)
	s.Require().NoError(err)
	s.Len(results, 1)

	results, err = s.store.Search(s.ctx, "alice", models.SearchFilter{Phone: "0815"}, 100, 0)
	s.Require().NoError(err)
	s.Len(results, 1)
}

func (s *InMemorySuite) TestSearchLastNameMatch() {
	s.Require().NoError(s.store.Create(s.ctx, &models.Contact{Username: "alice", FirstName: "John", LastName: "Doe"}))
	s.Require().NoError(s.store.Create(s.ctx, &models.Contact{Username: "alice", FirstName: "Jane", LastName: "Roe"}))

	results, err := s.store.Search(s.ctx, "alice", models.SearchFilter{Name: "doe"}, 100, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("John", results[0].FirstName)
}
