package memory

import (
	"context"
	"sync"
	"testing"

	"horus/internal/domain/entity"
	"horus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.TransactionManager = (*TransactionManager)(nil)
	_ repository.RepositoryFactory  = (*TransactionManager)(nil)
)

func newUser(email, document string) *entity.User {
	hash := "hash-of-" + document

	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ana",
		Email:        email,
		Document:     document,
		PasswordHash: &hash,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	user := newUser("ana@x.com", "12345678901")

	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byDocument, err := repo.FindByDocument(ctx, "12345678901")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byDocument.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.FirstName)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByDocument(ctx, "00000000000")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_CreateEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Create(ctx, newUser("ana@x.com", "12345678901")))

	err := repo.Create(ctx, newUser("ana@x.com", "99999999999"))
	var violation *repository.ConstraintViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, repository.FieldEmail, violation.Field)
	assert.True(t, errors.Is(err, errDuplicateKey))
	assert.Contains(t, err.Error(), "unique constraint on email violated")

	err = repo.Create(ctx, newUser("bia@x.com", "12345678901"))
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, repository.FieldDocument, violation.Field)

	assert.Len(t, repo.All(), 1)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	user := newUser("ana@x.com", "12345678901")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	*found.PasswordHash = "tampered"
	found.FirstName = "Changed"

	again, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-of-12345678901", *again.PasswordHash)
	assert.Equal(t, "Ana", again.FirstName)
}

func TestUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	repo := NewUserRepository()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc := uuid.NewString()[:11] + string(rune('a'+i))
			if err := repo.Create(ctx, newUser("race@x.com", doc)); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Len(t, repo.All(), 1)
}

func TestTransactionManager_PassesRepository(t *testing.T) {
	repo := NewUserRepository()
	tm := NewTransactionManager(repo)

	sentinel := errors.New("boom")
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		assert.Same(t, repo, f.UserRepo())

		return sentinel
	})
	assert.Same(t, sentinel, err)
}
