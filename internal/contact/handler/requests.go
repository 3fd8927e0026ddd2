package handler

import (
	"net/http"
	"strconv"

	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/platform/validation"
)

type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (r *CreateContactRequest) Validate() error {
	if err := validation.Required("first_name", r.FirstName, validation.MaxFieldLen); err != nil {
		return err
	}
	return validateOptionalContactFields(r.LastName, r.Email, r.Phone)
}

// UpdateContactRequest is a partial patch: absent fields leave the stored
// value untouched.
type UpdateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (r *UpdateContactRequest) Validate() error {
	if err := validation.Optional("first_name", r.FirstName, validation.MaxFieldLen); err != nil {
		return err
	}
	return validateOptionalContactFields(r.LastName, r.Email, r.Phone)
}

func validateOptionalContactFields(lastName, email, phone string) error {
	if err := validation.Optional("last_name", lastName, validation.MaxFieldLen); err != nil {
		return err
	}
	if err := validation.Email("email", email); err != nil {
		return err
	}
	return validation.Optional("phone", phone, validation.MaxPhoneLen)
}

type SearchContactRequest struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// ParseSearchRequest reads the filter and paging query parameters, applying
// page=1 size=10 defaults and the [1,100] size bound.
func ParseSearchRequest(r *http.Request) (*SearchContactRequest, error) {
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"), validation.DefaultPage, "page")
	if err != nil {
		return nil, err
	}
	size, err := queryInt(q.Get("size"), validation.DefaultPageSize, "size")
	if err != nil {
		return nil, err
	}

	req := &SearchContactRequest{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		Page:  page,
		Size:  size,
	}
	if err := validation.Page(req.Page); err != nil {
		return nil, err
	}
	if err := validation.Size(req.Size, 1, validation.MaxPageSize); err != nil {
		return nil, err
	}
	if err := validation.Optional("name", req.Name, validation.MaxFieldLen); err != nil {
		return nil, err
	}
	if err := validation.Optional("email", req.Email, validation.MaxFieldLen); err != nil {
		return nil, err
	}
	return req, validation.Optional("phone", req.Phone, validation.MaxPhoneLen)
}

func queryInt(raw string, fallback int, field string) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, field+" must be a number")
	}
	return value, nil
}
