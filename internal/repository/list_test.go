package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/logging"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/dmitrijs2005/lifekeeper/internal/storage"
	"github.com/stretchr/testify/require"
)

type note struct {
	models.Meta
	Text string `json:"text"`
}

func loggedInSession(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(context.Background(), storage.NewMemoryStore(), logging.NewDefault("error"))
	require.NoError(t, err)
	_, err = m.Register(context.Background(), "alice", "pw")
	require.NoError(t, err)
	return m
}

func TestList_CreateAssignsMetaAndAppends(t *testing.T) {
	ctx := context.Background()
	repo := New[*note](loggedInSession(t), "notes")

	created, err := repo.Create(ctx, &note{Text: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.UserID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	second, err := repo.Create(ctx, &note{Text: "second"})
	require.NoError(t, err)
	require.NotEqual(t, created.ID, second.ID)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "first", items[0].Text)
	require.Equal(t, "second", items[1].Text)
}

func TestList_UpdatePreservesIdentityAndAdvancesUpdatedAt(t *testing.T) {
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	current := base
	repo := New[*note](loggedInSession(t), "notes",
		WithNow[*note](func() time.Time { return current }))

	created, err := repo.Create(ctx, &note{Text: "v1"})
	require.NoError(t, err)

	current = base.Add(time.Hour)
	updated, err := repo.Update(ctx, created.ID, &note{Text: "v2"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.UserID, updated.UserID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	require.Equal(t, "v2", updated.Text)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestList_UpdateUnknownIdFailsAndKeepsList(t *testing.T) {
	ctx := context.Background()
	repo := New[*note](loggedInSession(t), "notes")

	created, err := repo.Create(ctx, &note{Text: "keep me"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "nope", &note{Text: "ignored"})
	require.ErrorIs(t, err, common.ErrNotFound)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, created.ID, items[0].ID)
	require.Equal(t, "keep me", items[0].Text)
}

func TestList_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := New[*note](loggedInSession(t), "notes")

	a, err := repo.Create(ctx, &note{Text: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &note{Text: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, a.ID))
	require.NoError(t, repo.Delete(ctx, a.ID))

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "b", items[0].Text)
}

func TestList_ValidateBlocksWrite(t *testing.T) {
	ctx := context.Background()
	bad := errors.New("bad note")
	repo := New[*note](loggedInSession(t), "notes",
		WithValidate[*note](func(n *note) error {
			if n.Text == "" {
				return bad
			}
			return nil
		}))

	_, err := repo.Create(ctx, &note{})
	require.ErrorIs(t, err, bad)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestList_ReplaceWhenDropsMatchingRecord(t *testing.T) {
	ctx := context.Background()
	repo := New[*note](loggedInSession(t), "notes",
		WithReplaceWhen[*note](func(existing, incoming *note) bool {
			return existing.Text == incoming.Text
		}))

	_, err := repo.Create(ctx, &note{Text: "same"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &note{Text: "same"})
	require.NoError(t, err)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, second.ID, items[0].ID)
}

func TestList_RequiresSession(t *testing.T) {
	ctx := context.Background()
	m, err := session.NewManager(ctx, storage.NewMemoryStore(), logging.NewDefault("error"))
	require.NoError(t, err)
	repo := New[*note](m, "notes")

	_, err = repo.All(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
	_, err = repo.Create(ctx, &note{Text: "x"})
	require.ErrorIs(t, err, common.ErrNoSession)
	_, err = repo.Update(ctx, "id", &note{Text: "x"})
	require.ErrorIs(t, err, common.ErrNoSession)
	require.ErrorIs(t, repo.Delete(ctx, "id"), common.ErrNoSession)
}
