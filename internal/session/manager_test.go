package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/logging"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/storage"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, store storage.Store) *Manager {
	t.Helper()
	m, err := NewManager(context.Background(), store, logging.NewDefault("error"))
	require.NoError(t, err)
	return m
}

func TestRegister_LogsInNewUser(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, storage.NewMemoryStore())

	u, err := m.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotEmpty(t, u.UserID)

	require.True(t, m.IsAuthenticated())
	require.Equal(t, u.UserID, m.Current().UserID)
}

func TestRegister_DuplicateUsernameLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := newManager(t, store)

	_, err := m.Register(ctx, "alice", "one")
	require.NoError(t, err)

	before, err := store.Get(ctx, "users")
	require.NoError(t, err)

	_, err = m.Register(ctx, "alice", "two")
	require.ErrorIs(t, err, common.ErrDuplicateUsername)

	after, err := store.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRegister_UsernameComparisonIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, storage.NewMemoryStore())

	_, err := m.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	// "Alice" is a distinct account.
	_, err = m.Register(ctx, "Alice", "pw")
	require.NoError(t, err)
}

func TestLogin_WrongPasswordKeepsSession(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, storage.NewMemoryStore())

	_, err := m.Register(ctx, "alice", "right")
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	_, err = m.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.False(t, m.IsAuthenticated())

	u, err := m.Login(ctx, "alice", "right")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestLogout_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, storage.NewMemoryStore())

	require.NoError(t, m.Logout(ctx))

	_, err := m.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))
	require.Nil(t, m.Current())
}

func TestNewManager_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	m1 := newManager(t, store)
	u, err := m1.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	// Fresh manager over the same store: the session comes back.
	m2 := newManager(t, store)
	require.True(t, m2.IsAuthenticated())
	require.Equal(t, u.UserID, m2.Current().UserID)
}

func TestNewManager_StaleSessionPointerStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	require.NoError(t, storage.SetJSON(ctx, store, "currentUserId", "ghost"))

	m := newManager(t, store)
	require.False(t, m.IsAuthenticated())
}

func TestNewManager_CorruptUserListTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "users", []byte(`{broken`)))

	m := newManager(t, store)
	require.False(t, m.IsAuthenticated())

	// The store recovers on the next write.
	_, err := m.Register(ctx, "alice", "pw")
	require.NoError(t, err)
}

func TestUserData_NamespacedPerUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := newManager(t, store)

	_, err := m.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NoError(t, m.SetUserData(ctx, models.TodoKind, []string{"alice's item"}))

	require.NoError(t, m.Logout(ctx))
	_, err = m.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	var items []string
	found, err := m.GetUserData(ctx, models.TodoKind, &items)
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, items)
}

func TestUserData_AnonymousAccess(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, storage.NewMemoryStore())

	var items []string
	found, err := m.GetUserData(ctx, models.TodoKind, &items)
	require.NoError(t, err)
	require.False(t, found)

	// Writes without a session are discarded, not errors.
	require.NoError(t, m.SetUserData(ctx, models.TodoKind, []string{"dropped"}))

	_, err = m.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	found, err = m.GetUserData(ctx, models.TodoKind, &items)
	require.NoError(t, err)
	require.False(t, found)
}
