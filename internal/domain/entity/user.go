// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinDocumentLength is the shortest national-id value accepted at registration.
const MinDocumentLength = 11

// User is the only entity of the identity service: one account that can log in.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	FirstName string    // The user's given name.
	Email     string    // Unique; the login identifier.
	Document  string    // Unique national identification number, also the bootstrap password.

	// PasswordHash is a bcrypt hash. Nil marks an account that authenticates
	// through an external identity provider and cannot use password login.
	PasswordHash *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil
}
