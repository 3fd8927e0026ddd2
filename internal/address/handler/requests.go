package handler

import (
	"net/http"
	"strconv"

	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/platform/validation"
)

type CreateAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (r *CreateAddressRequest) Validate() error {
	if err := validateOptionalAddressFields(r.Street, r.City, r.Province); err != nil {
		return err
	}
	if err := validation.Required("postal_code", r.PostalCode, validation.MaxPhoneLen); err != nil {
		return err
	}
	return validation.Required("country", r.Country, validation.MaxFieldLen)
}

// UpdateAddressRequest is a partial patch: absent fields leave the stored
// value untouched.
type UpdateAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (r *UpdateAddressRequest) Validate() error {
	if err := validateOptionalAddressFields(r.Street, r.City, r.Province); err != nil {
		return err
	}
	if err := validation.Optional("postal_code", r.PostalCode, validation.MaxPhoneLen); err != nil {
		return err
	}
	return validation.Optional("country", r.Country, validation.MaxFieldLen)
}

func validateOptionalAddressFields(street, city, province string) error {
	if err := validation.Optional("street", street, validation.MaxFieldLen); err != nil {
		return err
	}
	if err := validation.Optional("city", city, validation.MaxFieldLen); err != nil {
		return err
	}
	return validation.Optional("province", province, validation.MaxFieldLen)
}

type ListAddressRequest struct {
	Page int
	Size int
}

// ParseListRequest reads the paging query parameters, applying page=1 size=10
// defaults and the [10,100] size bound the listing schema enforces.
func ParseListRequest(r *http.Request) (*ListAddressRequest, error) {
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"), validation.DefaultPage, "page")
	if err != nil {
		return nil, err
	}
	size, err := queryInt(q.Get("size"), validation.DefaultPageSize, "size")
	if err != nil {
		return nil, err
	}

	req := &ListAddressRequest{Page: page, Size: size}
	if err := validation.Page(req.Page); err != nil {
		return nil, err
	}
	return req, validation.Size(req.Size, validation.MinListPageSize, validation.MaxPageSize)
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
