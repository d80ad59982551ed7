// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"horus/internal/domain/service"
	"horus/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The cost is chosen per call so each workflow can pick its own work factor.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt silently replaces an out-of-range cost with its default, so the
// range is checked here instead.
func (h *bcryptHasher) Hash(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", errors.Errorf("bcrypt cost %d must be in [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt: failed to hash password")
	}

	return string(hash), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// Malformed hashes surface as errors, never panics.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
