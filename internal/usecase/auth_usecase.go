// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// SessionTokenTTL is the lifetime of a token issued by Authenticate.
// Clients re-authenticate once it lapses; there is no refresh flow.
const SessionTokenTTL = time.Minute

// AuthenticateInput defines the credentials submitted to log in.
type AuthenticateInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateOutput carries the signed session token.
type AuthenticateOutput struct {
	Token string `json:"token"`
}

// AuthUsecase exchanges credentials for a session token.
type AuthUsecase interface {
	// Authenticate returns ErrInvalidCredentials for an unknown email or a
	// wrong password, and ErrNoPasswordSet for an account without a password.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
