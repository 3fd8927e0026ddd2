package service

import (
	"context"
	"errors"

	"rolodex/internal/address/models"
	contactmodels "rolodex/internal/contact/models"
	usermodels "rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/pagination"
	"rolodex/pkg/platform/sentinel"
)

// Store is the persistence contract for address records. Single-record
// operations are keyed on the composite (contact_id, id) pair.
type Store interface {
	Create(ctx context.Context, address *models.Address) error
	FindByID(ctx context.Context, contactID, addressID int64) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, contactID, addressID int64) error
	ListByContact(ctx context.Context, contactID int64, limit, offset int) ([]*models.Address, error)
	CountByContact(ctx context.Context, contactID int64) (int, error)
}

// Contacts is the ownership gate: every address operation first proves the
// parent contact belongs to the requesting user.
type Contacts interface {
	RequireOwned(ctx context.Context, username string, id int64) (*contactmodels.Contact, error)
}

// Service enforces the two-level containment invariant: the contact must be
// owned by the user, and the address must exist under that contact.
type Service struct {
	addresses Store
	contacts  Contacts
}

func New(addresses Store, contacts Contacts) *Service {
	return &Service{addresses: addresses, contacts: contacts}
}

type CreateParams struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// UpdateParams carries the optional address fields; empty means leave
// unchanged.
type UpdateParams struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

type ListParams struct {
	Page int
	Size int
}

// Create persists an address under the user's contact. The parent contact
// must exist and be owned by the user.
func (s *Service) Create(ctx context.Context, user *usermodels.User, contactID int64, p CreateParams) (*models.Address, error) {
	if _, err := s.contacts.RequireOwned(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	address := &models.Address{
		ContactID:  contactID,
		Street:     p.Street,
		City:       p.City,
		Province:   p.Province,
		PostalCode: p.PostalCode,
		Country:    p.Country,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create address")
	}
	return address, nil
}

// Get returns the address identified by (contact_id, address_id) after the
// ownership check.
func (s *Service) Get(ctx context.Context, user *usermodels.User, contactID, addressID int64) (*models.Address, error) {
	if _, err := s.contacts.RequireOwned(ctx, user.Username, contactID); err != nil {
		return nil, err
	}
	return s.requireAddress(ctx, contactID, addressID)
}

// Update applies the present, non-empty fields to the stored record and
// persists it.
func (s *Service) Update(ctx context.Context, user *usermodels.User, contactID, addressID int64, p UpdateParams) (*models.Address, error) {
	if _, err := s.contacts.RequireOwned(ctx, user.Username, contactID); err != nil {
		return nil, err
	}
	address, err := s.requireAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}

	if p.Street != "" {
		address.Street = p.Street
	}
	if p.City != "" {
		address.City = p.City
	}
	if p.Province != "" {
		address.Province = p.Province
	}
	if p.PostalCode != "" {
		address.PostalCode = p.PostalCode
	}
	if p.Country != "" {
		address.Country = p.Country
	}

	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update address")
	}
	return address, nil
}

// Delete removes the address and returns its last known state.
func (s *Service) Delete(ctx context.Context, user *usermodels.User, contactID, addressID int64) (*models.Address, error) {
	if _, err := s.contacts.RequireOwned(ctx, user.Username, contactID); err != nil {
		return nil, err
	}
	address, err := s.requireAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Delete(ctx, contactID, addressID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete address")
	}
	return address, nil
}

// List returns one page of the contact's addresses plus paging metadata.
// total_page is ceil(total/size) and the requested size is echoed, matching
// the contact search formula.
func (s *Service) List(ctx context.Context, user *usermodels.User, contactID int64, p ListParams) ([]*models.Address, pagination.Paging, error) {
	if _, err := s.contacts.RequireOwned(ctx, user.Username, contactID); err != nil {
		return nil, pagination.Paging{}, err
	}

	offset := pagination.Offset(p.Page, p.Size)
	addresses, err := s.addresses.ListByContact(ctx, contactID, p.Size, offset)
	if err != nil {
		return nil, pagination.Paging{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list addresses")
	}
	total, err := s.addresses.CountByContact(ctx, contactID)
	if err != nil {
		return nil, pagination.Paging{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count addresses")
	}

	return addresses, pagination.New(total, p.Page, p.Size), nil
}

func (s *Service) requireAddress(ctx context.Context, contactID, addressID int64) (*models.Address, error) {
	address, err := s.addresses.FindByID(ctx, contactID, addressID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "address not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up address")
	}
	return address, nil
}
