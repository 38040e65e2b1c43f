package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/clubhub/internal/app/models"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUsers struct {
	users    []*models.User
	locked   bool
	countErr error
}

func (f *fakeUsers) LockBootstrap(context.Context) error {
	f.locked = true
	return nil
}

func (f *fakeUsers) Count(context.Context) (int, error) {
	return len(f.users), f.countErr
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func TestCreateMainAdmin(t *testing.T) {
	admin := MainAdmin{Name: "Main Admin", Email: " Root@Example.com ", Password: "secret1"}

	t.Run("Should create the admin on an empty table", func(t *testing.T) {
		users := &fakeUsers{}

		created, err := CreateMainAdmin(context.Background(), passthroughTx{}, users, fakeHasher{}, admin, zerolog.Nop())

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, users.locked)
		require.Len(t, users.users, 1)
		assert.Equal(t, "root@example.com", users.users[0].Email)
		assert.Equal(t, models.RoleAdmin, users.users[0].Role)
		assert.Equal(t, "hashed:secret1", users.users[0].Password)
	})

	t.Run("Should skip when users exist", func(t *testing.T) {
		users := &fakeUsers{users: []*models.User{{ID: models.NewUserID()}}}

		created, err := CreateMainAdmin(context.Background(), passthroughTx{}, users, fakeHasher{}, admin, zerolog.Nop())

		require.NoError(t, err)
		assert.False(t, created)
		assert.Len(t, users.users, 1)
	})

	t.Run("Should skip when no email is configured", func(t *testing.T) {
		users := &fakeUsers{}

		created, err := CreateMainAdmin(context.Background(), passthroughTx{}, users, fakeHasher{}, MainAdmin{}, zerolog.Nop())

		require.NoError(t, err)
		assert.False(t, created)
		assert.False(t, users.locked)
	})

	t.Run("Should surface storage errors", func(t *testing.T) {
		users := &fakeUsers{countErr: errors.New("connection refused")}

		_, err := CreateMainAdmin(context.Background(), passthroughTx{}, users, fakeHasher{}, admin, zerolog.Nop())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
