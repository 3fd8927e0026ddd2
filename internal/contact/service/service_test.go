package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolodex/internal/contact/store"
	usermodels "rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctx   context.Context
	svc   *Service
	owner *usermodels.User
	other *usermodels.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = New(store.NewInMemory(), nil)
	s.owner = &usermodels.User{Username: "alice"}
	s.other = &usermodels.User{Username: "bob"}
}

func (s *ServiceSuite) TestCreateAssignsOwnerAndID() {
	contact, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "0811"})
	s.Require().NoError(err)

	s.Equal("alice", contact.Username)
	s.NotZero(contact.ID)
	s.Equal("John", contact.FirstName)
}

func (s *ServiceSuite) TestGetForeignContactIsNotFound() {
	contact, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John"})
	s.Require().NoError(err)

	// Another user cannot tell a foreign contact from a missing one.
	_, err = s.svc.Get(s.ctx, s.other, contact.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.EqualError(err, "contact not found")

	_, err = s.svc.Get(s.ctx, s.owner, contact.ID+100)
	s.Require().Error(err)
	s.EqualError(err, "contact not found")
}

func (s *ServiceSuite) TestUpdatePatchesPresentFieldsOnly() {
	contact, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "0811"})
	s.Require().NoError(err)

	updated, err := s.svc.Update(s.ctx, s.owner, contact.ID, UpdateParams{LastName: "Smith"})
	s.Require().NoError(err)
	s.Equal("John", updated.FirstName)
	s.Equal("Smith", updated.LastName)
	s.Equal("john@example.com", updated.Email)
	s.Equal("0811", updated.Phone)
}

func (s *ServiceSuite) TestUpdateForeignContactIsNotFound() {
	contact, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John"})
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, s.other, contact.ID, UpdateParams{FirstName: "Hijacked"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	unchanged, err := s.svc.Get(s.ctx, s.owner, contact.ID)
	s.Require().NoError(err)
	s.Equal("John", unchanged.FirstName)
}

func (s *ServiceSuite) TestDelete() {
	contact, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John"})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Delete(s.ctx, s.owner, contact.ID))

	_, err = s.svc.Get(s.ctx, s.owner, contact.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.svc.Delete(s.ctx, s.owner, contact.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestSearchPaging() {
	for i := 0; i < 20; i++ {
		_, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: fmt.Sprintf("Match%02d", i)})
		s.Require().NoError(err)
	}
	// Noise owned by another user never shows up.
	_, err := s.svc.Create(s.ctx, s.other, CreateParams{FirstName: "Match99"})
	s.Require().NoError(err)

	contacts, paging, err := s.svc.Search(s.ctx, s.owner, SearchParams{Name: "match", Page: 1, Size: 5})
	s.Require().NoError(err)
	s.Len(contacts, 5)
	s.Equal(4, paging.TotalPage)
	s.Equal(1, paging.CurrentPage)
	s.Equal(5, paging.Size)

	contacts, paging, err = s.svc.Search(s.ctx, s.owner, SearchParams{Name: "match", Page: 4, Size: 5})
	s.Require().NoError(err)
	s.Len(contacts, 5)
	s.Equal(4, paging.CurrentPage)

	contacts, _, err = s.svc.Search(s.ctx, s.owner, SearchParams{Name: "match", Page: 5, Size: 5})
	s.Require().NoError(err)
	s.Empty(contacts)
}

func (s *ServiceSuite) TestSearchFilters() {
	_, err := s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "081234"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctx, s.owner, CreateParams{FirstName: "Jane", LastName: "Roe", Email: "jane@other.org", Phone: "99999"})
	s.Require().NoError(err)

	contacts, _, err := s.svc.Search(s.ctx, s.owner, SearchParams{Name: "doe", Page: 1, Size: 10})
	s.Require().NoError(err)
	s.Require().Len(contacts, 1)
	s.Equal("John", contacts[0].FirstName)

	contacts, _, err = s.svc.Search(s.ctx, s.owner, SearchParams{Email: "example.com", Page: 1, Size: 10})
	s.Require().NoError(err)
	s.Require().Len(contacts, 1)
	s.Equal("John", contacts[0].FirstName)

	contacts, _, err = s.svc.Search(s.ctx, s.owner, SearchParams{Phone: "9999", Page: 1, Size: 10})
	s.Require().NoError(err)
	s.Require().Len(contacts, 1)
	s.Equal("Jane", contacts[0].FirstName)

	// Filters are conjunctive.
	contacts, _, err = s.svc.Search(s.ctx, s.owner, SearchParams{Name: "john", Phone: "9999", Page: 1, Size: 10})
	s.Require().NoError(err)
	s.Empty(contacts)

	// No filter matches everything the user owns.
	contacts, paging, err := s.svc.Search(s.ctx, s.owner, SearchParams{Page: 1, Size: 10})
	s.Require().NoError(err)
	s.Len(contacts, 2)
	s.Equal(1, paging.TotalPage)
}
