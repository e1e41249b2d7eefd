package models

import "time"

// User represents an account record held by the stub identity provider.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the provider-assigned unique identifier (UUID).
	ID string `json:"-"`

	// Email is the unique address the account was created with.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
