package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"horus/config"
	"horus/internal/domain/repository"
	mockRepo "horus/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(bcryptCost int) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Auth:      &config.AuthConfig{BcryptCost: bcryptCost},
	}
}

// expectTx makes txManager run the callback against a factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
