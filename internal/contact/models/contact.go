package models

// Contact is a stored contact record. Username is the ownership key; every
// lookup is scoped to it so a foreign contact is indistinguishable from a
// missing one. Optional fields use the empty string for absent.
type Contact struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SearchFilter is a conjunctive contact filter. Name matches first or last
// name case-insensitively; Email and Phone are substring matches. Empty
// fields contribute nothing.
type SearchFilter struct {
	Name  string
	Email string
	Phone string
}
