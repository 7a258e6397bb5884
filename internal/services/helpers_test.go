package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/lifekeeper/internal/logging"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/dmitrijs2005/lifekeeper/internal/storage"
	"github.com/stretchr/testify/require"
)

// newSession returns a manager over the given store with "alice" registered
// and logged in.
func newSession(t *testing.T, store storage.Store) *session.Manager {
	t.Helper()
	ctx := context.Background()
	m, err := session.NewManager(ctx, store, logging.NewDefault("error"))
	require.NoError(t, err)
	if !m.IsAuthenticated() {
		if _, err := m.Login(ctx, "alice", "pw"); err != nil {
			_, err = m.Register(ctx, "alice", "pw")
			require.NoError(t, err)
		}
	}
	return m
}
