// Package memory provides thread-safe in-memory implementations of the
// repository interfaces, enforcing the same unique constraints as the
// PostgreSQL schema. It backs workflow and HTTP tests.
package memory

import (
	"context"
	"sync"
	"time"

	"horus/internal/domain/entity"
	"horus/internal/domain/repository"

	"github.com/google/uuid"
)

// UserRepository is a thread-safe in-memory repository.UserRepository.
type UserRepository struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*entity.User
	byEmail    map[string]uuid.UUID
	byDocument map[string]uuid.UUID
	now        func() time.Time
}

// NewUserRepository creates an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[uuid.UUID]*entity.User),
		byEmail:    make(map[string]uuid.UUID),
		byDocument: make(map[string]uuid.UUID),
		now:        time.Now,
	}
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lookup(id, true)
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]

	return r.lookup(id, ok)
}

func (r *UserRepository) FindByDocument(_ context.Context, document string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDocument[document]

	return r.lookup(id, ok)
}

// Create stores a copy of user. Email is checked before document, matching
// the order of the registration workflow.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return &repository.ConstraintViolationError{Field: repository.FieldEmail, Err: errDuplicateKey}
	}
	if _, taken := r.byDocument[user.Document]; taken {
		return &repository.ConstraintViolationError{Field: repository.FieldDocument, Err: errDuplicateKey}
	}
	if _, taken := r.users[user.ID]; taken {
		return &repository.ConstraintViolationError{Field: repository.FieldUnknown, Err: errDuplicateKey}
	}

	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = user.ID
	r.byDocument[user.Document] = user.ID

	return nil
}

// Put stores user without uniqueness checks. Tests use it to seed accounts
// the registration workflow cannot create, such as social-login users.
func (r *UserRepository) Put(user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = cloneUser(user)
	r.byEmail[user.Email] = user.ID
	r.byDocument[user.Document] = user.ID
}

// All returns a snapshot of every stored user.
func (r *UserRepository) All() []*entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}

	return out
}

func (r *UserRepository) lookup(id uuid.UUID, ok bool) (*entity.User, error) {
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(u), nil
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		cp.PasswordHash = &hash
	}

	return &cp
}
