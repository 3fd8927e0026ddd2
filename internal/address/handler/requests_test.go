package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddressRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAddressRequest
		wantErr string
	}{
		{name: "valid minimal", req: CreateAddressRequest{PostalCode: "12345", Country: "Indonesia"}},
		{name: "valid full", req: CreateAddressRequest{Street: "Jalan Mawar", City: "Jakarta", Province: "DKI", PostalCode: "12345", Country: "Indonesia"}},
		{name: "missing postal code", req: CreateAddressRequest{Country: "Indonesia"}, wantErr: "postal_code is required"},
		{name: "missing country", req: CreateAddressRequest{PostalCode: "12345"}, wantErr: "country is required"},
		{name: "postal code too long", req: CreateAddressRequest{PostalCode: strings.Repeat("1", 21), Country: "Indonesia"}, wantErr: "postal_code must be at most 20 characters"},
		{name: "street too long", req: CreateAddressRequest{Street: strings.Repeat("x", 101), PostalCode: "12345", Country: "Indonesia"}, wantErr: "street must be at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAddressRequestValidate(t *testing.T) {
	// Everything is optional on a patch, including the required create fields.
	assert.NoError(t, (&UpdateAddressRequest{}).Validate())
	assert.NoError(t, (&UpdateAddressRequest{City: "Bandung"}).Validate())
	assert.EqualError(t, (&UpdateAddressRequest{Country: strings.Repeat("x", 101)}).Validate(), "country must be at most 100 characters")
}

func TestParseListRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := ParseListRequest(httptest.NewRequest("GET", "/api/contacts/1/addresses", nil))
		require.NoError(t, err)
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 10, req.Size)
	})

	t.Run("size floor is ten", func(t *testing.T) {
		_, err := ParseListRequest(httptest.NewRequest("GET", "/api/contacts/1/addresses?size=5", nil))
		assert.EqualError(t, err, "size must be between 10 and 100")
	})

	t.Run("explicit values", func(t *testing.T) {
		req, err := ParseListRequest(httptest.NewRequest("GET", "/api/contacts/1/addresses?page=2&size=50", nil))
		require.NoError(t, err)
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, 50, req.Size)
	})

	t.Run("non-numeric paging", func(t *testing.T) {
		_, err := ParseListRequest(httptest.NewRequest("GET", "/api/contacts/1/addresses?page=abc", nil))
		assert.EqualError(t, err, "page must be a number")
	})
}
