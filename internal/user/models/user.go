package models

// User is the stored account record. Password holds the bcrypt hash, never
// plaintext. Token is the single active opaque session token; empty means
// logged out.
type User struct {
	Username string
	Name     string
	Password string
	Token    string
}
