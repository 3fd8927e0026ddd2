// Package validation holds the field-level checks shared by the handler
// request schemas. Every check returns a bad-request domain error naming the
// first violated field, which WriteError renders verbatim.
package validation

import (
	"fmt"

	"github.com/asaskevich/govalidator"

	dErrors "rolodex/pkg/domain-errors"
)

// Field length limits shared across schemas.
const (
	MaxFieldLen = 100
	MaxPhoneLen = 20

	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Address listing enforces a larger minimum window than contact search.
	MinListPageSize = 10
)

// Required rejects empty values and values longer than max.
func Required(field, value string, max int) error {
	if value == "" {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s is required", field))
	}
	return Optional(field, value, max)
}

// Optional accepts the empty string (treated as absent) and otherwise
// enforces the length limit.
func Optional(field, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

// Email accepts the empty string and otherwise requires a well-formed address.
func Email(field, value string) error {
	if value == "" {
		return nil
	}
	if err := Optional(field, value, MaxFieldLen); err != nil {
		return err
	}
	if !govalidator.IsEmail(value) {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s must be a valid email address", field))
	}
	return nil
}

// PositiveID rejects identifiers that are not strictly positive.
func PositiveID(field string, value int64) error {
	if value <= 0 {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s must be positive", field))
	}
	return nil
}

// Page rejects page numbers below 1.
func Page(value int) error {
	if value < 1 {
		return dErrors.New(dErrors.CodeBadRequest, "page must be at least 1")
	}
	return nil
}

// Size enforces an inclusive [min, max] window size.
func Size(value, min, max int) error {
	if value < min || value > max {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("size must be between %d and %d", min, max))
	}
	return nil
}
