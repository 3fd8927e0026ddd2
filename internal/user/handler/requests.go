package handler

import (
	"rolodex/pkg/platform/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *RegisterRequest) Validate() error {
	if err := validation.Required("username", r.Username, validation.MaxFieldLen); err != nil {
		return err
	}
	if err := validation.Required("password", r.Password, validation.MaxFieldLen); err != nil {
		return err
	}
	return validation.Required("name", r.Name, validation.MaxFieldLen)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if err := validation.Required("username", r.Username, validation.MaxFieldLen); err != nil {
		return err
	}
	return validation.Required("password", r.Password, validation.MaxFieldLen)
}

// UpdateUserRequest is a partial patch: absent fields leave the stored value
// untouched.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validation.Optional("name", r.Name, validation.MaxFieldLen); err != nil {
		return err
	}
	return validation.Optional("password", r.Password, validation.MaxFieldLen)
}
