package memory

import (
	"context"

	"horus/internal/domain/repository"
	"horus/internal/errors"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

// TransactionManager runs fn directly against the wrapped repository. There
// is no isolation or rollback: concurrent callers interleave freely and only
// the store's unique checks protect the data, which is the race the
// registration workflow must survive.
type TransactionManager struct {
	users repository.UserRepository
}

// NewTransactionManager wraps users in a pass-through TransactionManager.
func NewTransactionManager(users repository.UserRepository) *TransactionManager {
	return &TransactionManager{users: users}
}

func (tm *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

// UserRepo implements repository.RepositoryFactory.
func (tm *TransactionManager) UserRepo() repository.UserRepository {
	return tm.users
}
