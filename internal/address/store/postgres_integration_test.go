//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolodex/internal/address/models"
	"rolodex/pkg/platform/sentinel"
	"rolodex/pkg/testutil/containers"
)

type PostgresSuite struct {
	suite.Suite
	ctx       context.Context
	pg        *containers.PostgresContainer
	store     *Postgres
	contactID int64
	otherID   int64
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx))

	_, err := s.pg.DB.ExecContext(s.ctx,
		`INSERT INTO users (username, name, password) VALUES ('alice', 'Alice', 'hash')`)
	s.Require().NoError(err)

	s.contactID = s.insertContact("John")
	s.otherID = s.insertContact("Jane")
}

func (s *PostgresSuite) insertContact(firstName string) int64 {
	var id int64
	err := s.pg.DB.QueryRowContext(s.ctx,
		`INSERT INTO contacts (username, first_name) VALUES ('alice', $1) RETURNING id`, firstName).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *PostgresSuite) TestCreateAndFind() {
	address := &models.Address{
		ContactID:  s.contactID,
		Street:     "Jalan Mawar",
		City:       "Jakarta",
		Province:   "DKI",
		PostalCode: "12345",
		Country:    "Indonesia",
	}
	s.Require().NoError(s.store.Create(s.ctx, address))
	s.NotZero(address.ID)

	found, err := s.store.FindByID(s.ctx, s.contactID, address.ID)
	s.Require().NoError(err)
	s.Equal("Jalan Mawar", found.Street)
	s.Equal("12345", found.PostalCode)
}

func (s *PostgresSuite) TestNullableFieldsRoundTripAsEmpty() {
	address := &models.Address{ContactID: s.contactID, PostalCode: "12345", Country: "Indonesia"}
	s.Require().NoError(s.store.Create(s.ctx, address))

	found, err := s.store.FindByID(s.ctx, s.contactID, address.ID)
	s.Require().NoError(err)
	s.Empty(found.Street)
	s.Empty(found.City)
	s.Empty(found.Province)
}

func (s *PostgresSuite) TestFindIsContactScoped() {
	address := &models.Address{ContactID: s.contactID, PostalCode: "12345", Country: "Indonesia"}
	s.Require().NoError(s.store.Create(s.ctx, address))

	_, err := s.store.FindByID(s.ctx, s.otherID, address.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresSuite) TestUpdateAndDelete() {
	address := &models.Address{ContactID: s.contactID, PostalCode: "12345", Country: "Indonesia"}
	s.Require().NoError(s.store.Create(s.ctx, address))

	address.City = "Bandung"
	s.Require().NoError(s.store.Update(s.ctx, address))

	found, err := s.store.FindByID(s.ctx, s.contactID, address.ID)
	s.Require().NoError(err)
	s.Equal("Bandung", found.City)

	s.ErrorIs(s.store.Delete(s.ctx, s.otherID, address.ID), sentinel.ErrNotFound)
	s.Require().NoError(s.store.Delete(s.ctx, s.contactID, address.ID))
	s.ErrorIs(s.store.Delete(s.ctx, s.contactID, address.ID), sentinel.ErrNotFound)
}

func (s *PostgresSuite) TestListAndCount() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.Create(s.ctx, &models.Address{
			ContactID:  s.contactID,
			PostalCode: fmt.Sprintf("%05d", i),
			Country:    "Indonesia",
		}))
	}
	s.Require().NoError(s.store.Create(s.ctx, &models.Address{
		ContactID:  s.otherID,
		PostalCode: "99999",
		Country:    "Indonesia",
	}))

	all, err := s.store.ListByContact(s.ctx, s.contactID, 100, 0)
	s.Require().NoError(err)
	s.Len(all, 5)

	count, err := s.store.CountByContact(s.ctx, s.contactID)
	s.Require().NoError(err)
	s.Equal(5, count)

	page, err := s.store.ListByContact(s.ctx, s.contactID, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("00002", page[0].PostalCode)

	// Deleting the parent contact cascades to its addresses.
	_, err = s.pg.DB.ExecContext(s.ctx, `DELETE FROM contacts WHERE id = $1`, s.contactID)
	s.Require().NoError(err)
	count, err = s.store.CountByContact(s.ctx, s.contactID)
	s.Require().NoError(err)
	s.Zero(count)
}
