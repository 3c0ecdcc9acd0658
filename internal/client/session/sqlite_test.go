package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), db
}

func TestSQLiteStore_SetGet(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "tok-123"))

	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)

	// overwriting is an upsert
	require.NoError(t, s.Set(ctx, KeyToken, "tok-456"))
	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-456", got)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Get(context.Background(), KeyUser)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Remove(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "tok"))
	require.NoError(t, s.Remove(ctx, KeyToken))

	_, err := s.Get(ctx, KeyToken)
	require.ErrorIs(t, err, ErrNotFound)

	// removing an absent key is not an error
	require.NoError(t, s.Remove(ctx, KeyToken))
}

func TestSQLiteStore_Clear(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "tok"))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u1"}`))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Get(ctx, KeyToken)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, KeyUser)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Replace(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "tok-old"))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"stale"}`))

	require.NoError(t, s.Replace(ctx, "tok-new", `{"id":"u1"}`))

	token, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-new", token)
	user, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, `{"id":"u1"}`, user)
}

func TestSQLiteStore_ReplaceRollsBackOnCancel(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyToken, "tok-old"))
	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"u1"}`))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, s.Replace(cancelled, "tok-new", `{"id":"u2"}`))

	// The aborted swap must leave the previous pair untouched.
	token, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-old", token)
	user, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, `{"id":"u1"}`, user)
}

func TestSQLiteStore_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, KeyToken, "tok"))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSQLiteStore(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok", got)
}
