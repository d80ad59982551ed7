package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Subject   uuid.UUID // The authenticated user's ID.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Sign produces a compact signed token for claims.Subject that expires
	// expiresIn after issuance. IssuedAt and ExpiresAt on the input are ignored.
	Sign(claims Claims, expiresIn time.Duration) (string, error)

	// Validate checks signature and expiry and returns the decoded claims.
	Validate(tokenString string) (*Claims, error)
}
