// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"fmt"

	"horus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups that match no user.
var ErrUserNotFound = errors.New("user not found")

// UniqueField names the user attribute guarded by a unique constraint.
type UniqueField string

const (
	FieldEmail    UniqueField = "email"
	FieldDocument UniqueField = "document"

	// FieldUnknown is used when the store reports a duplicate without saying
	// which constraint fired.
	FieldUnknown UniqueField = ""
)

// ConstraintViolationError is returned by Create when a unique constraint
// rejects the row, typically because a concurrent request inserted the same
// email or document after the caller's existence check.
type ConstraintViolationError struct {
	Field UniqueField
	Err   error
}

func (e *ConstraintViolationError) Error() string {
	if e.Field == FieldUnknown {
		return fmt.Sprintf("unique constraint violated: %v", e.Err)
	}

	return fmt.Sprintf("unique constraint on %s violated: %v", e.Field, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// UserRepository is the credential store consumed by the login and registration workflows.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByDocument retrieves a user by exact document match.
	FindByDocument(ctx context.Context, document string) (*entity.User, error)

	// Create inserts a new user. A unique-index rejection is reported as
	// *ConstraintViolationError.
	Create(ctx context.Context, user *entity.User) error
}
