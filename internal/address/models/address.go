package models

// Address is a stored address record. Addresses are contained in a contact;
// identity on the wire is the composite (contact_id, id), never the id alone.
type Address struct {
	ID         int64
	ContactID  int64
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}
