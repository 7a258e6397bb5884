package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storetest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	v, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`"one"`)))
	require.NoError(t, s.Set(ctx, "k", []byte(`"two"`)))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`"two"`), v)
}

func TestSQLiteStore_RemoveIsIdempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_ListAndClear(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Set(ctx, "b", []byte(`2`)))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, []byte(`1`), all["a"])

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
