package postgres

import (
	"strings"

	"horus/internal/domain/repository"
	"horus/internal/infra/persistence/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// asConstraintViolation converts a unique violation into the repository's
// typed error. The driver error is preferred because it names the index;
// GORM's translated ErrDuplicatedKey does not.
func asConstraintViolation(err error) (*repository.ConstraintViolationError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &repository.ConstraintViolationError{
			Field: fieldForConstraint(pgErr.ConstraintName),
			Err:   err,
		}, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &repository.ConstraintViolationError{Field: repository.FieldUnknown, Err: err}, true
	}

	return nil, false
}

func fieldForConstraint(name string) repository.UniqueField {
	switch {
	case name == model.UsersEmailIndex, strings.HasSuffix(name, "_email"), strings.HasSuffix(name, "_email_key"):
		return repository.FieldEmail
	case name == model.UsersDocumentIndex, strings.HasSuffix(name, "_document"), strings.HasSuffix(name, "_document_key"):
		return repository.FieldDocument
	default:
		return repository.FieldUnknown
	}
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NotNullViolation
}
