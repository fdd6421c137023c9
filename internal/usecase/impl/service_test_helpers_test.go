package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vacuum/config"
	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/repository"
	"vacuum/internal/domain/service"
	"vacuum/internal/infra/persistence/postgres"
	"vacuum/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

const (
	testOrganization  = "Acme Pumps Ltd."
	testResetRedirect = "https://app.example.com/reset-password"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ObjectStore.PresignTTL = time.Hour
	cfg.Report.OrganizationName = testOrganization
	cfg.Identity.ResetRedirectURL = testResetRedirect

	return cfg
}

// newMemStore returns an object store over a fresh in-memory bucket.
func newMemStore(t *testing.T) (service.ObjectStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return storage.NewBucketStore(bucket, "https://files.example.com"), bucket
}

// loadActor reads a user with its role, the way the auth middleware hands it over.
func loadActor(t *testing.T, db *gorm.DB, id uuid.UUID) *entity.User {
	t.Helper()

	user, err := postgres.NewUserRepository(db).FindUserByID(context.Background(), id)
	require.NoError(t, err)

	return user
}

// failingTxManager fails every transaction without running it.
type failingTxManager struct {
	err error
}

func (m failingTxManager) Execute(context.Context, func(repository.RepositoryFactory) error) error {
	return m.err
}

func ptr[T any](value T) *T {
	return &value
}
