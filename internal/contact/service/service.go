package service

import (
	"context"
	"errors"
	"time"

	contactmetrics "rolodex/internal/contact/metrics"
	"rolodex/internal/contact/models"
	usermodels "rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/pagination"
	"rolodex/pkg/platform/sentinel"
)

// Store is the persistence contract for contact records. Single-record
// operations are keyed on the composite (id, username) pair; lookups report
// sentinel.ErrNotFound for absent or foreign-owned records alike.
type Store interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, username string, id int64) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, filter models.SearchFilter, limit, offset int) ([]*models.Contact, error)
	Count(ctx context.Context, username string, filter models.SearchFilter) (int, error)
}

// Service enforces ownership on every contact operation and applies the
// partial-patch update semantics.
type Service struct {
	contacts Store
	metrics  *contactmetrics.Metrics
}

func New(contacts Store, metrics *contactmetrics.Metrics) *Service {
	return &Service{contacts: contacts, metrics: metrics}
}

type CreateParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// UpdateParams carries the optional contact fields; empty means leave
// unchanged.
type UpdateParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type SearchParams struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Create persists a contact owned by the authenticated user.
func (s *Service) Create(ctx context.Context, user *usermodels.User, p CreateParams) (*models.Contact, error) {
	contact := &models.Contact{
		Username:  user.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create contact")
	}
	s.metrics.IncCreated()
	return contact, nil
}

// RequireOwned fetches the contact identified by (id, username). A contact
// owned by another user is indistinguishable from a missing one; both are
// 404. Address operations use this as their ownership gate.
func (s *Service) RequireOwned(ctx context.Context, username string, id int64) (*models.Contact, error) {
	contact, err := s.contacts.FindByID(ctx, username, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "contact not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up contact")
	}
	return contact, nil
}

// Get returns the user's contact by id.
func (s *Service) Get(ctx context.Context, user *usermodels.User, id int64) (*models.Contact, error) {
	return s.RequireOwned(ctx, user.Username, id)
}

// Update applies the present, non-empty fields to the stored record and
// persists it. Absent fields are left untouched, not nulled.
func (s *Service) Update(ctx context.Context, user *usermodels.User, id int64, p UpdateParams) (*models.Contact, error) {
	contact, err := s.RequireOwned(ctx, user.Username, id)
	if err != nil {
		return nil, err
	}

	if p.FirstName != "" {
		contact.FirstName = p.FirstName
	}
	if p.LastName != "" {
		contact.LastName = p.LastName
	}
	if p.Email != "" {
		contact.Email = p.Email
	}
	if p.Phone != "" {
		contact.Phone = p.Phone
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update contact")
	}
	return contact, nil
}

// Delete removes the user's contact. Hard delete.
func (s *Service) Delete(ctx context.Context, user *usermodels.User, id int64) error {
	if _, err := s.RequireOwned(ctx, user.Username, id); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, user.Username, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete contact")
	}
	return nil
}

// Search returns one page of the user's contacts matching the filter, plus
// paging metadata with total_page = ceil(total/size).
func (s *Service) Search(ctx context.Context, user *usermodels.User, p SearchParams) ([]*models.Contact, pagination.Paging, error) {
	start := time.Now()
	defer s.metrics.ObserveSearch(start)

	filter := models.SearchFilter{Name: p.Name, Email: p.Email, Phone: p.Phone}
	offset := pagination.Offset(p.Page, p.Size)

	contacts, err := s.contacts.Search(ctx, user.Username, filter, p.Size, offset)
	if err != nil {
		return nil, pagination.Paging{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search contacts")
	}
	total, err := s.contacts.Count(ctx, user.Username, filter)
	if err != nil {
		return nil, pagination.Paging{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count contacts")
	}

	return contacts, pagination.New(total, p.Page, p.Size), nil
}
