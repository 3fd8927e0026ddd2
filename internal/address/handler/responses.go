package handler

import (
	"rolodex/internal/address/models"
)

type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func NewAddressResponse(address *models.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

func NewAddressListResponse(addresses []*models.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, NewAddressResponse(address))
	}
	return out
}
